package manager

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ultraviolet-black/shotty/pkg/inventory"
	"github.com/ultraviolet-black/shotty/pkg/inventory/inventorytest"
)

var started = time.Date(2023, time.October, 1, 9, 5, 3, 0, time.UTC)

func newFixture() *inventorytest.Source {
	src := inventorytest.NewSource(
		inventory.Instance{
			ID:               "i-abc",
			Type:             "t2.micro",
			AvailabilityZone: "us-east-1a",
			State:            "running",
			PublicDNSName:    "ec2-1.compute.amazonaws.com",
			Tags:             map[string]string{"Project": "abc"},
		},
		inventory.Instance{
			ID:               "i-bare",
			Type:             "t3.small",
			AvailabilityZone: "us-east-1b",
			State:            "stopped",
		},
	)

	src.AddVolume(inventory.Volume{ID: "vol-1", InstanceID: "i-abc", SizeGB: 8, State: "in-use"})
	src.AddVolume(inventory.Volume{ID: "vol-2", InstanceID: "i-abc", SizeGB: 100, Encrypted: true, State: "in-use"})
	src.AddVolume(inventory.Volume{ID: "vol-3", InstanceID: "i-bare", SizeGB: 20, State: "in-use"})

	src.AddSnapshot(inventory.Snapshot{ID: "snap-1", VolumeID: "vol-1", State: "completed", Progress: "100%", StartTime: started})
	src.AddSnapshot(inventory.Snapshot{ID: "snap-2", VolumeID: "vol-1", State: "pending", Progress: "42%", StartTime: started})
	src.AddSnapshot(inventory.Snapshot{ID: "snap-3", VolumeID: "vol-3", State: "completed", Progress: "100%", StartTime: started})

	return src
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestListInstances(t *testing.T) {
	out := &bytes.Buffer{}
	m := NewManager(WithSource(newFixture()), WithOutput(out))

	require.NoError(t, m.ListInstances(context.Background(), ""))

	assert.Equal(t, []string{
		"i-abc, t2.micro, us-east-1a, running, ec2-1.compute.amazonaws.com, abc",
		"i-bare, t3.small, us-east-1b, stopped, , <no project>",
	}, lines(out))
}

func TestListInstances_Project(t *testing.T) {
	out := &bytes.Buffer{}
	m := NewManager(WithSource(newFixture()), WithOutput(out))

	require.NoError(t, m.ListInstances(context.Background(), "abc"))

	assert.Equal(t, []string{
		"i-abc, t2.micro, us-east-1a, running, ec2-1.compute.amazonaws.com, abc",
	}, lines(out))
}

func TestListInstances_UnknownProject(t *testing.T) {
	out := &bytes.Buffer{}
	m := NewManager(WithSource(newFixture()), WithOutput(out))

	require.NoError(t, m.ListInstances(context.Background(), "nope"))
	assert.Empty(t, out.String())
}

func TestListVolumes_Project(t *testing.T) {
	out := &bytes.Buffer{}
	m := NewManager(WithSource(newFixture()), WithOutput(out))

	require.NoError(t, m.ListVolumes(context.Background(), "abc"))

	assert.Equal(t, []string{
		"vol-1, i-abc, in-use, 8GB, Not Encrypted",
		"vol-2, i-abc, in-use, 100GB, Encrypted",
	}, lines(out))
}

func TestListSnapshots(t *testing.T) {
	out := &bytes.Buffer{}
	m := NewManager(WithSource(newFixture()), WithOutput(out))

	require.NoError(t, m.ListSnapshots(context.Background(), ""))

	assert.Equal(t, []string{
		"snap-1, vol-1, i-abc, completed, 100%, Sun Oct  1 09:05:03 2023",
		"snap-2, vol-1, i-abc, pending, 42%, Sun Oct  1 09:05:03 2023",
		"snap-3, vol-3, i-bare, completed, 100%, Sun Oct  1 09:05:03 2023",
	}, lines(out))
}

func TestListCommandsAreReadOnly(t *testing.T) {
	src := newFixture()

	ctx := context.Background()
	run := func() string {
		out := &bytes.Buffer{}
		m := NewManager(WithSource(src), WithOutput(out))
		require.NoError(t, m.ListInstances(ctx, ""))
		require.NoError(t, m.ListVolumes(ctx, ""))
		require.NoError(t, m.ListSnapshots(ctx, ""))
		return out.String()
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)

	for _, call := range src.Calls {
		assert.NotContains(t, call, "Create")
		assert.NotContains(t, call, "Start")
		assert.NotContains(t, call, "Stop")
	}
}

func TestCreateSnapshots(t *testing.T) {
	src := newFixture()
	out := &bytes.Buffer{}
	m := NewManager(WithSource(src), WithOutput(out))

	require.NoError(t, m.CreateSnapshots(context.Background(), "abc"))

	assert.Equal(t, []string{
		"Creating snapshot of vol-1",
		"Creating snapshot of vol-2",
	}, lines(out))
	assert.Len(t, src.SnapshotMap["vol-1"], 3)
	assert.Len(t, src.SnapshotMap["vol-2"], 1)
	assert.Len(t, src.SnapshotMap["vol-3"], 1)
}

func TestCreateSnapshots_NotIdempotent(t *testing.T) {
	src := newFixture()
	m := NewManager(WithSource(src), WithOutput(&bytes.Buffer{}))

	require.NoError(t, m.CreateSnapshots(context.Background(), "abc"))
	require.NoError(t, m.CreateSnapshots(context.Background(), "abc"))

	snapshots := src.SnapshotMap["vol-2"]
	require.Len(t, snapshots, 2)
	assert.NotEqual(t, snapshots[0].ID, snapshots[1].ID)
}

func TestCreateSnapshots_FailFast(t *testing.T) {
	boom := errors.New("boom")
	src := newFixture()
	src.Errors["CreateSnapshot vol-1"] = boom

	out := &bytes.Buffer{}
	m := NewManager(WithSource(src), WithOutput(out))

	err := m.CreateSnapshots(context.Background(), "")
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"Creating snapshot of vol-1"}, lines(out))
	assert.NotContains(t, src.Calls, "CreateSnapshot vol-2")
	assert.NotContains(t, src.Calls, "Volumes i-bare")
}

func TestStartInstances(t *testing.T) {
	src := newFixture()
	out := &bytes.Buffer{}
	m := NewManager(WithSource(src), WithOutput(out))

	require.NoError(t, m.StartInstances(context.Background(), ""))

	assert.Equal(t, []string{"Starting i-abc...", "Starting i-bare..."}, lines(out))
	assert.Contains(t, src.Calls, "StartInstance i-abc")
	assert.Contains(t, src.Calls, "StartInstance i-bare")
}

func TestStopInstances_Project(t *testing.T) {
	src := newFixture()
	out := &bytes.Buffer{}
	m := NewManager(WithSource(src), WithOutput(out))

	require.NoError(t, m.StopInstances(context.Background(), "abc"))

	assert.Equal(t, []string{"Stopping i-abc..."}, lines(out))
	assert.Contains(t, src.Calls, "StopInstance i-abc")
	assert.NotContains(t, src.Calls, "StopInstance i-bare")
}

func TestStopInstances_FailFast(t *testing.T) {
	boom := errors.New("boom")
	src := newFixture()
	src.Errors["StopInstance i-abc"] = boom

	m := NewManager(WithSource(src), WithOutput(&bytes.Buffer{}))

	assert.ErrorIs(t, m.StopInstances(context.Background(), ""), boom)
	assert.NotContains(t, src.Calls, "StopInstance i-bare")
}

func TestListVolumes_InstancesError(t *testing.T) {
	boom := errors.New("denied")
	src := newFixture()
	src.Errors["Instances abc"] = boom

	out := &bytes.Buffer{}
	m := NewManager(WithSource(src), WithOutput(out))

	assert.ErrorIs(t, m.ListVolumes(context.Background(), "abc"), boom)
	assert.Empty(t, out.String())
}

func TestNilSource(t *testing.T) {
	m := NewManager(WithOutput(&bytes.Buffer{}))

	assert.ErrorIs(t, m.ListInstances(context.Background(), ""), ErrNilSource)
	assert.ErrorIs(t, m.StartInstances(context.Background(), ""), ErrNilSource)
}

func TestWithSnapshotDescription_EmptyKeepsDefault(t *testing.T) {
	m := NewManager(WithSnapshotDescription("")).(*manager)
	assert.Equal(t, DefaultSnapshotDescription, m.snapshotDescription)

	m = NewManager(WithSnapshotDescription("nightly")).(*manager)
	assert.Equal(t, "nightly", m.snapshotDescription)
}
