// Package inventorytest provides an in-memory inventory.Source for tests.
package inventorytest

import (
	"context"
	"fmt"
	"time"

	"github.com/ultraviolet-black/shotty/pkg/inventory"
)

var _ inventory.Source = (*Source)(nil)

// Source keeps instances, volumes keyed by instance id and snapshots keyed
// by volume id. Every call is recorded in Calls as "Op id".
type Source struct {
	InstanceList []inventory.Instance
	VolumeMap    map[string][]inventory.Volume
	SnapshotMap  map[string][]inventory.Snapshot

	// Errors fails the call whose "Op id" entry matches.
	Errors map[string]error

	Calls []string

	// Descriptions holds the description of every created snapshot.
	Descriptions []string

	Now func() time.Time

	created int
}

func NewSource(instances ...inventory.Instance) *Source {
	return &Source{
		InstanceList: instances,
		VolumeMap:    make(map[string][]inventory.Volume),
		SnapshotMap:  make(map[string][]inventory.Snapshot),
		Errors:       make(map[string]error),
		Now:          time.Now,
	}
}

func (s *Source) AddVolume(volume inventory.Volume) {
	s.VolumeMap[volume.InstanceID] = append(s.VolumeMap[volume.InstanceID], volume)
}

func (s *Source) AddSnapshot(snapshot inventory.Snapshot) {
	s.SnapshotMap[snapshot.VolumeID] = append(s.SnapshotMap[snapshot.VolumeID], snapshot)
}

func (s *Source) call(op, id string) error {
	key := fmt.Sprintf("%s %s", op, id)
	s.Calls = append(s.Calls, key)
	return s.Errors[key]
}

func (s *Source) Instances(_ context.Context, project string) ([]inventory.Instance, error) {

	if err := s.call("Instances", project); err != nil {
		return nil, err
	}

	instances := []inventory.Instance{}

	for _, instance := range s.InstanceList {
		if len(project) > 0 && instance.Tags[inventory.ProjectTagKey] != project {
			continue
		}
		instances = append(instances, instance)
	}

	return instances, nil

}

func (s *Source) Volumes(_ context.Context, instance inventory.Instance) ([]inventory.Volume, error) {

	if err := s.call("Volumes", instance.ID); err != nil {
		return nil, err
	}

	return append([]inventory.Volume{}, s.VolumeMap[instance.ID]...), nil

}

func (s *Source) Snapshots(_ context.Context, volume inventory.Volume) ([]inventory.Snapshot, error) {

	if err := s.call("Snapshots", volume.ID); err != nil {
		return nil, err
	}

	return append([]inventory.Snapshot{}, s.SnapshotMap[volume.ID]...), nil

}

func (s *Source) CreateSnapshot(_ context.Context, _ inventory.Instance, volume inventory.Volume, description string) (inventory.Snapshot, error) {

	if err := s.call("CreateSnapshot", volume.ID); err != nil {
		return inventory.Snapshot{}, err
	}

	s.Descriptions = append(s.Descriptions, description)

	s.created++

	snapshot := inventory.Snapshot{
		ID:        fmt.Sprintf("snap-%04d", s.created),
		VolumeID:  volume.ID,
		State:     "pending",
		StartTime: s.Now(),
	}

	s.AddSnapshot(snapshot)

	return snapshot, nil

}

func (s *Source) setState(id, state string) {
	for i := range s.InstanceList {
		if s.InstanceList[i].ID == id {
			s.InstanceList[i].State = state
		}
	}
}

func (s *Source) StartInstance(_ context.Context, instance inventory.Instance) error {

	if err := s.call("StartInstance", instance.ID); err != nil {
		return err
	}

	s.setState(instance.ID, "pending")

	return nil

}

func (s *Source) StopInstance(_ context.Context, instance inventory.Instance) error {

	if err := s.call("StopInstance", instance.ID); err != nil {
		return err
	}

	s.setState(instance.ID, "stopping")

	return nil

}
