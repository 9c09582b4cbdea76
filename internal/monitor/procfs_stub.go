//go:build !linux && !darwin && !freebsd

package monitor

func statfs(string) (DiskUsage, error) {
	return DiskUsage{}, ErrUnsupported
}
