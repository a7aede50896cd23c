package inventory

import "context"

// Source is the remote inventory the commands walk. Listings are returned
// fully exhausted, in the order the backing service yields them.
type Source interface {
	// Instances returns the instances whose Project tag equals project, or
	// every visible instance when project is empty.
	Instances(ctx context.Context, project string) ([]Instance, error)
	Volumes(ctx context.Context, instance Instance) ([]Volume, error)
	Snapshots(ctx context.Context, volume Volume) ([]Snapshot, error)

	CreateSnapshot(ctx context.Context, instance Instance, volume Volume, description string) (Snapshot, error)
	StartInstance(ctx context.Context, instance Instance) error
	StopInstance(ctx context.Context, instance Instance) error
}
