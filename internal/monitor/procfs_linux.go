package monitor

import "golang.org/x/sys/unix"

// statfs uses the fragment size for capacity and the block size for the
// space available to unprivileged users.
func statfs(path string) (DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{
		Total: uint64(st.Blocks) * uint64(st.Frsize),
		Free:  uint64(st.Bavail) * uint64(st.Bsize),
	}, nil
}
