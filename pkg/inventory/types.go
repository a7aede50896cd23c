package inventory

import "time"

const (
	ProjectTagKey = "Project"
	NoProject     = "<no project>"
)

type Instance struct {
	ID               string
	Type             string
	AvailabilityZone string
	State            string
	PublicDNSName    string
	Tags             map[string]string
}

// Project returns the value of the Project tag, or NoProject when the
// instance carries no such tag. A nil tag set is treated as empty.
func (i Instance) Project() string {
	if project, ok := i.Tags[ProjectTagKey]; ok {
		return project
	}
	return NoProject
}

type Volume struct {
	ID         string
	InstanceID string
	SizeGB     int32
	Encrypted  bool
	State      string
}

type Snapshot struct {
	ID        string
	VolumeID  string
	State     string
	Progress  string
	StartTime time.Time
}
