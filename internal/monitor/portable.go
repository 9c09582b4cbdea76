package monitor

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// Portable reads statistics through gopsutil, which uses sysctl and friends
// on hosts without procfs.
type Portable struct{}

func (Portable) Load(ctx context.Context) (LoadAvg, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadAvg{}, err
	}
	return LoadAvg{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}, nil
}

func (Portable) Memory(ctx context.Context) (MemInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemInfo{}, err
	}
	return memFromVirtual(vm), nil
}

// memFromVirtual undoes gopsutil folding SReclaimable into Cached on Linux,
// so both sources agree with the Cached line of /proc/meminfo.
func memFromVirtual(vm *mem.VirtualMemoryStat) MemInfo {
	cached := vm.Cached
	if vm.Sreclaimable <= cached {
		cached -= vm.Sreclaimable
	}
	return MemInfo{
		Total:   vm.Total / 1024,
		Free:    vm.Free / 1024,
		Buffers: vm.Buffers / 1024,
		Cached:  cached / 1024,
	}
}

func (Portable) Disk(ctx context.Context, path string) (DiskUsage, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{Total: u.Total, Free: u.Free}, nil
}

func (Portable) RAID(context.Context) ([]MDArray, error) {
	return nil, ErrUnsupported
}
