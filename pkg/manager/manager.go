package manager

import (
	"context"
	"fmt"
	"io"

	"github.com/ultraviolet-black/shotty/pkg/inventory"
	"github.com/ultraviolet-black/shotty/pkg/observability"
)

type manager struct {
	source inventory.Source
	out    io.Writer

	snapshotDescription string
}

func (m *manager) instances(ctx context.Context, project string) ([]inventory.Instance, error) {

	if m.source == nil {
		return nil, ErrNilSource
	}

	return m.source.Instances(ctx, project)

}

func (m *manager) ListInstances(ctx context.Context, project string) error {

	instances, err := m.instances(ctx, project)
	if err != nil {
		return err
	}

	for _, instance := range instances {
		if err := writeRecord(m.out, instanceRecord(instance)...); err != nil {
			return err
		}
	}

	return nil

}

func (m *manager) ListVolumes(ctx context.Context, project string) error {

	instances, err := m.instances(ctx, project)
	if err != nil {
		return err
	}

	for _, instance := range instances {

		volumes, err := m.source.Volumes(ctx, instance)
		if err != nil {
			return err
		}

		for _, volume := range volumes {
			if err := writeRecord(m.out, volumeRecord(volume)...); err != nil {
				return err
			}
		}

	}

	return nil

}

func (m *manager) ListSnapshots(ctx context.Context, project string) error {

	instances, err := m.instances(ctx, project)
	if err != nil {
		return err
	}

	for _, instance := range instances {

		volumes, err := m.source.Volumes(ctx, instance)
		if err != nil {
			return err
		}

		for _, volume := range volumes {

			snapshots, err := m.source.Snapshots(ctx, volume)
			if err != nil {
				return err
			}

			for _, snapshot := range snapshots {
				if err := writeRecord(m.out, snapshotRecord(snapshot, volume, instance)...); err != nil {
					return err
				}
			}

		}

	}

	return nil

}

func (m *manager) CreateSnapshots(ctx context.Context, project string) error {

	instances, err := m.instances(ctx, project)
	if err != nil {
		return err
	}

	for _, instance := range instances {

		volumes, err := m.source.Volumes(ctx, instance)
		if err != nil {
			return err
		}

		for _, volume := range volumes {

			fmt.Fprintf(m.out, "Creating snapshot of %s\n", volume.ID)

			snapshot, err := m.source.CreateSnapshot(ctx, instance, volume, m.snapshotDescription)
			if err != nil {
				return err
			}

			observability.Log.Infow("snapshot created",
				"snapshot_id", snapshot.ID,
				"volume_id", volume.ID,
				"instance_id", instance.ID,
			)

		}

	}

	return nil

}

func (m *manager) StartInstances(ctx context.Context, project string) error {

	instances, err := m.instances(ctx, project)
	if err != nil {
		return err
	}

	for _, instance := range instances {

		fmt.Fprintf(m.out, "Starting %s...\n", instance.ID)

		if err := m.source.StartInstance(ctx, instance); err != nil {
			return err
		}

	}

	return nil

}

func (m *manager) StopInstances(ctx context.Context, project string) error {

	instances, err := m.instances(ctx, project)
	if err != nil {
		return err
	}

	for _, instance := range instances {

		fmt.Fprintf(m.out, "Stopping %s...\n", instance.ID)

		if err := m.source.StopInstance(ctx, instance); err != nil {
			return err
		}

	}

	return nil

}
