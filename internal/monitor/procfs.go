package monitor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/procfs"
	"github.com/shirou/gopsutil/v3/common"
	"github.com/shirou/gopsutil/v3/load"
)

// Procfs reads statistics from the proc filesystem mounted at Root and
// from statfs(2).
type Procfs struct {
	Root string
}

func (p *Procfs) root() string {
	if p.Root == "" {
		return DefaultProcRoot
	}
	return p.Root
}

// Load reads <root>/loadavg. gopsutil falls back to sysinfo(2) when the file
// cannot be read, which only makes sense for the host's own /proc.
func (p *Procfs) Load(ctx context.Context) (LoadAvg, error) {
	if err := ctx.Err(); err != nil {
		return LoadAvg{}, err
	}
	root := p.root()
	if root != DefaultProcRoot {
		if _, err := os.Stat(filepath.Join(root, "loadavg")); err != nil {
			return LoadAvg{}, err
		}
	}
	ctx = context.WithValue(ctx, common.EnvKey, common.EnvMap{common.HostProcEnvKey: root})
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadAvg{}, err
	}
	return LoadAvg{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}, nil
}

func (p *Procfs) fs() (procfs.FS, error) {
	return procfs.NewFS(p.root())
}

// Memory needs all of MemTotal, MemFree, Buffers and Cached.
func (p *Procfs) Memory(ctx context.Context) (MemInfo, error) {
	if err := ctx.Err(); err != nil {
		return MemInfo{}, err
	}
	fs, err := p.fs()
	if err != nil {
		return MemInfo{}, err
	}
	mi, err := fs.Meminfo()
	if err != nil {
		return MemInfo{}, err
	}
	return memFromProcfs(mi)
}

func memFromProcfs(mi procfs.Meminfo) (MemInfo, error) {
	fields := []*uint64{mi.MemTotal, mi.MemFree, mi.Buffers, mi.Cached}
	missing := 0
	for _, f := range fields {
		if f == nil {
			missing++
		}
	}
	if missing != 0 {
		return MemInfo{}, fmt.Errorf("meminfo: %d fields missing: %w", missing, ErrNoData)
	}
	return MemInfo{
		Total:   *mi.MemTotal,
		Free:    *mi.MemFree,
		Buffers: *mi.Buffers,
		Cached:  *mi.Cached,
	}, nil
}

func (p *Procfs) Disk(ctx context.Context, path string) (DiskUsage, error) {
	if err := ctx.Err(); err != nil {
		return DiskUsage{}, err
	}
	if path == "" {
		return DiskUsage{}, errors.New("disk: empty path")
	}
	return statfs(path)
}

func (p *Procfs) RAID(ctx context.Context) ([]MDArray, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs, err := p.fs()
	if err != nil {
		return nil, err
	}
	stats, err := fs.MDStat()
	if err != nil {
		return nil, err
	}
	arrays := make([]MDArray, 0, len(stats))
	for _, s := range stats {
		arrays = append(arrays, arrayFromProcfs(s))
	}
	return arrays, nil
}

// syncActions maps procfs activity states onto the mdstat action names.
var syncActions = map[string]string{
	"recovering": "recovery",
	"resyncing":  "resync",
	"checking":   "check",
	"reshaping":  "reshape",
}

func arrayFromProcfs(s procfs.MDStat) MDArray {
	a := MDArray{
		Name:    s.Name,
		State:   s.ActivityState,
		Devices: s.Devices,
		Want:    int(s.DisksTotal),
		Have:    int(s.DisksActive),
		Failed:  int(s.DisksFailed),
	}
	if action, ok := syncActions[s.ActivityState]; ok {
		a.State = "active"
		a.Action = action
		a.Progress = s.BlocksSyncedPct
	}
	return a
}
