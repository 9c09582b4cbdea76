// Package monitor reads the system statistics shown by the applets.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrUnsupported is returned when a source cannot provide a statistic
	// on this platform.
	ErrUnsupported = errors.New("not supported by this source")
	// ErrNoData means the read succeeded but there is nothing to show.
	ErrNoData = errors.New("no data")
)

type LoadAvg struct {
	One     float64
	Five    float64
	Fifteen float64
}

// MemInfo holds the /proc/meminfo fields used by the memory applet, in kB.
type MemInfo struct {
	Total   uint64
	Free    uint64
	Buffers uint64
	Cached  uint64
}

// Available counts buffers and page cache as free memory.
func (m MemInfo) Available() uint64 {
	return m.Free + m.Buffers + m.Cached
}

// UsedPercent is the integer percentage of memory in use. ok is false when
// the total is zero or smaller than the available amount.
func (m MemInfo) UsedPercent() (uint64, bool) {
	avail := m.Available()
	if m.Total == 0 || avail > m.Total {
		return 0, false
	}
	return (m.Total - avail) * 100 / m.Total, true
}

// DiskUsage is filesystem capacity in bytes. Free is what an unprivileged
// user may still allocate.
type DiskUsage struct {
	Total uint64
	Free  uint64
}

func (d DiskUsage) UsedPercent() (uint64, bool) {
	if d.Total == 0 || d.Free > d.Total {
		return 0, false
	}
	return (d.Total - d.Free) * 100 / d.Total, true
}

// MDArray is one md (software RAID) device from /proc/mdstat.
type MDArray struct {
	Name     string
	State    string // "active" or "inactive"
	Devices  []string
	Want     int     // member disks the array is built for
	Have     int     // member disks currently in sync
	Failed   int     // members marked (F)
	Action   string  // running sync action: "resync", "recovery", "check", "reshape"
	Progress float64 // percentage of Action completed
}

// Degraded reports whether the array is missing members or not running.
func (a MDArray) Degraded() bool {
	if a.State != "active" {
		return true
	}
	return a.Have < a.Want || a.Failed > 0
}

// Source provides the statistics behind every applet.
type Source interface {
	Load(ctx context.Context) (LoadAvg, error)
	Memory(ctx context.Context) (MemInfo, error)
	Disk(ctx context.Context, path string) (DiskUsage, error)
	RAID(ctx context.Context) ([]MDArray, error)
}

const DefaultProcRoot = "/proc"

// New returns the source named kind. "auto" reads procfs on Linux and falls
// back to the portable source elsewhere.
func New(kind, procRoot string) (Source, error) {
	if procRoot == "" {
		procRoot = DefaultProcRoot
	}
	switch kind {
	case "", "auto":
		if runtime.GOOS == "linux" {
			return &Procfs{Root: procRoot}, nil
		}
		return Portable{}, nil
	case "procfs":
		return &Procfs{Root: procRoot}, nil
	case "portable":
		return Portable{}, nil
	}
	return nil, fmt.Errorf("unknown source %q", kind)
}
