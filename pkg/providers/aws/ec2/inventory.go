package ec2

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/samber/lo"
	"github.com/ultraviolet-black/shotty/pkg/inventory"
	"github.com/ultraviolet-black/shotty/pkg/observability"
)

const (
	createdByTagKey   = "CreatedBy"
	createdByTagValue = "shotty"
	runIDTagKey       = "RunId"
)

type ec2Inventory struct {
	client API

	runID          string
	snapshotOwners []string
}

func filter(name string, values ...string) types.Filter {
	return types.Filter{
		Name:   aws.String(name),
		Values: values,
	}
}

func tagsToMap(tags []types.Tag) map[string]string {
	return lo.Associate(tags, func(tag types.Tag) (string, string) {
		return aws.ToString(tag.Key), aws.ToString(tag.Value)
	})
}

func logAPIError(op string, err error) {

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		observability.Log.Debugw("ec2 call failed",
			"operation", op,
			"code", apiErr.ErrorCode(),
			"message", apiErr.ErrorMessage(),
		)
		return
	}

	observability.Log.Debugw("ec2 call failed", "operation", op, "error", err)

}

func toInstance(instance types.Instance) inventory.Instance {

	i := inventory.Instance{
		ID:            aws.ToString(instance.InstanceId),
		Type:          string(instance.InstanceType),
		PublicDNSName: aws.ToString(instance.PublicDnsName),
		Tags:          tagsToMap(instance.Tags),
	}

	if instance.Placement != nil {
		i.AvailabilityZone = aws.ToString(instance.Placement.AvailabilityZone)
	}

	if instance.State != nil {
		i.State = string(instance.State.Name)
	}

	return i

}

func toVolume(instanceID string, volume types.Volume) inventory.Volume {
	return inventory.Volume{
		ID:         aws.ToString(volume.VolumeId),
		InstanceID: instanceID,
		SizeGB:     aws.ToInt32(volume.Size),
		Encrypted:  aws.ToBool(volume.Encrypted),
		State:      string(volume.State),
	}
}

func toSnapshot(snapshot types.Snapshot) inventory.Snapshot {
	return inventory.Snapshot{
		ID:        aws.ToString(snapshot.SnapshotId),
		VolumeID:  aws.ToString(snapshot.VolumeId),
		State:     string(snapshot.State),
		Progress:  aws.ToString(snapshot.Progress),
		StartTime: aws.ToTime(snapshot.StartTime),
	}
}

func (e *ec2Inventory) Instances(ctx context.Context, project string) ([]inventory.Instance, error) {

	input := &ec2.DescribeInstancesInput{}

	if len(project) > 0 {
		input.Filters = []types.Filter{
			filter("tag:"+inventory.ProjectTagKey, project),
		}
	}

	instances := []inventory.Instance{}

	paginator := ec2.NewDescribeInstancesPaginator(e.client, input)

	for paginator.HasMorePages() {

		output, err := paginator.NextPage(ctx)
		if err != nil {
			logAPIError("DescribeInstances", err)
			return nil, fmt.Errorf("describing instances: %w", err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, toInstance(instance))
			}
		}

	}

	observability.Log.Debugw("instances resolved", "project", project, "count", len(instances))

	return instances, nil

}

func (e *ec2Inventory) Volumes(ctx context.Context, instance inventory.Instance) ([]inventory.Volume, error) {

	volumes := []inventory.Volume{}

	paginator := ec2.NewDescribeVolumesPaginator(e.client, &ec2.DescribeVolumesInput{
		Filters: []types.Filter{
			filter("attachment.instance-id", instance.ID),
		},
	})

	for paginator.HasMorePages() {

		output, err := paginator.NextPage(ctx)
		if err != nil {
			logAPIError("DescribeVolumes", err)
			return nil, fmt.Errorf("describing volumes of %s: %w", instance.ID, err)
		}

		for _, volume := range output.Volumes {
			volumes = append(volumes, toVolume(instance.ID, volume))
		}

	}

	return volumes, nil

}

func (e *ec2Inventory) Snapshots(ctx context.Context, volume inventory.Volume) ([]inventory.Snapshot, error) {

	snapshots := []inventory.Snapshot{}

	paginator := ec2.NewDescribeSnapshotsPaginator(e.client, &ec2.DescribeSnapshotsInput{
		OwnerIds: e.snapshotOwners,
		Filters: []types.Filter{
			filter("volume-id", volume.ID),
		},
	})

	for paginator.HasMorePages() {

		output, err := paginator.NextPage(ctx)
		if err != nil {
			logAPIError("DescribeSnapshots", err)
			return nil, fmt.Errorf("describing snapshots of %s: %w", volume.ID, err)
		}

		for _, snapshot := range output.Snapshots {
			snapshots = append(snapshots, toSnapshot(snapshot))
		}

	}

	return snapshots, nil

}

func (e *ec2Inventory) snapshotTags(instance inventory.Instance) []types.Tag {

	tags := map[string]string{
		createdByTagKey: createdByTagValue,
		runIDTagKey:     e.runID,
	}

	if project, ok := instance.Tags[inventory.ProjectTagKey]; ok {
		tags[inventory.ProjectTagKey] = project
	}

	keys := lo.Keys(tags)
	sort.Strings(keys)

	return lo.Map(keys, func(key string, _ int) types.Tag {
		return types.Tag{
			Key:   aws.String(key),
			Value: aws.String(tags[key]),
		}
	})

}

func (e *ec2Inventory) CreateSnapshot(ctx context.Context, instance inventory.Instance, volume inventory.Volume, description string) (inventory.Snapshot, error) {

	output, err := e.client.CreateSnapshot(ctx, &ec2.CreateSnapshotInput{
		VolumeId:    aws.String(volume.ID),
		Description: aws.String(description),
		TagSpecifications: []types.TagSpecification{
			{
				ResourceType: types.ResourceTypeSnapshot,
				Tags:         e.snapshotTags(instance),
			},
		},
	})
	if err != nil {
		logAPIError("CreateSnapshot", err)
		return inventory.Snapshot{}, fmt.Errorf("creating snapshot of %s: %w", volume.ID, err)
	}

	snapshot := inventory.Snapshot{
		ID:        aws.ToString(output.SnapshotId),
		VolumeID:  aws.ToString(output.VolumeId),
		State:     string(output.State),
		Progress:  aws.ToString(output.Progress),
		StartTime: aws.ToTime(output.StartTime),
	}

	observability.Log.Debugw("snapshot requested",
		"snapshot_id", snapshot.ID,
		"volume_id", volume.ID,
		"instance_id", instance.ID,
		"run_id", e.runID,
	)

	return snapshot, nil

}

func (e *ec2Inventory) StartInstance(ctx context.Context, instance inventory.Instance) error {

	if _, err := e.client.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instance.ID},
	}); err != nil {
		logAPIError("StartInstances", err)
		return fmt.Errorf("starting %s: %w", instance.ID, err)
	}

	return nil

}

func (e *ec2Inventory) StopInstance(ctx context.Context, instance inventory.Instance) error {

	if _, err := e.client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instance.ID},
	}); err != nil {
		logAPIError("StopInstances", err)
		return fmt.Errorf("stopping %s: %w", instance.ID, err)
	}

	return nil

}
