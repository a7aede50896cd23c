package manager

import (
	"context"
	"io"
	"os"

	"github.com/ultraviolet-black/shotty/pkg/inventory"
)

const DefaultSnapshotDescription = "Created by snapshotalyzer 30000"

type ManagerOption func(*manager)

func WithSource(source inventory.Source) ManagerOption {
	return func(m *manager) {
		m.source = source
	}
}

func WithOutput(out io.Writer) ManagerOption {
	return func(m *manager) {
		m.out = out
	}
}

func WithSnapshotDescription(description string) ManagerOption {
	return func(m *manager) {
		if len(description) > 0 {
			m.snapshotDescription = description
		}
	}
}

// Manager runs the shotty commands against an inventory source. Every
// operation walks its items in order and stops at the first remote error.
type Manager interface {
	ListInstances(ctx context.Context, project string) error
	ListVolumes(ctx context.Context, project string) error
	ListSnapshots(ctx context.Context, project string) error

	CreateSnapshots(ctx context.Context, project string) error
	StartInstances(ctx context.Context, project string) error
	StopInstances(ctx context.Context, project string) error
}

func NewManager(opts ...ManagerOption) Manager {

	m := &manager{
		out:                 os.Stdout,
		snapshotDescription: DefaultSnapshotDescription,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m

}
