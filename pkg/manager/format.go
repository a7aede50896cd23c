package manager

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ultraviolet-black/shotty/pkg/inventory"
)

// StartTimeLayout matches the C locale %c representation.
const StartTimeLayout = time.ANSIC

const recordSeparator = ", "

func writeRecord(w io.Writer, fields ...string) error {
	_, err := fmt.Fprintln(w, strings.Join(fields, recordSeparator))
	return err
}

func instanceRecord(i inventory.Instance) []string {
	return []string{
		i.ID,
		i.Type,
		i.AvailabilityZone,
		i.State,
		i.PublicDNSName,
		i.Project(),
	}
}

func encryptionLabel(encrypted bool) string {
	if encrypted {
		return "Encrypted"
	}
	return "Not Encrypted"
}

func volumeRecord(v inventory.Volume) []string {
	return []string{
		v.ID,
		v.InstanceID,
		v.State,
		fmt.Sprintf("%dGB", v.SizeGB),
		encryptionLabel(v.Encrypted),
	}
}

func snapshotRecord(s inventory.Snapshot, v inventory.Volume, i inventory.Instance) []string {
	return []string{
		s.ID,
		v.ID,
		i.ID,
		s.State,
		s.Progress,
		s.StartTime.Format(StartTimeLayout),
	}
}
