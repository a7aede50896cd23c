package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/google/uuid"
	"github.com/ultraviolet-black/shotty/pkg/inventory"
)

// API is the subset of the EC2 client used by the inventory. *ec2.Client
// satisfies it.
type API interface {
	ec2.DescribeInstancesAPIClient
	ec2.DescribeVolumesAPIClient
	ec2.DescribeSnapshotsAPIClient

	CreateSnapshot(context.Context, *ec2.CreateSnapshotInput, ...func(*ec2.Options)) (*ec2.CreateSnapshotOutput, error)
	StartInstances(context.Context, *ec2.StartInstancesInput, ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	StopInstances(context.Context, *ec2.StopInstancesInput, ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

type InventoryOption func(*ec2Inventory)

func WithEC2Client(client API) InventoryOption {
	return func(e *ec2Inventory) {
		e.client = client
	}
}

// WithRunID sets the value of the RunId tag put on created snapshots.
func WithRunID(runID string) InventoryOption {
	return func(e *ec2Inventory) {
		e.runID = runID
	}
}

func WithSnapshotOwners(owners ...string) InventoryOption {
	return func(e *ec2Inventory) {
		e.snapshotOwners = owners
	}
}

func NewInventory(opts ...InventoryOption) inventory.Source {

	e := &ec2Inventory{
		runID:          uuid.NewString(),
		snapshotOwners: []string{"self"},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e

}
