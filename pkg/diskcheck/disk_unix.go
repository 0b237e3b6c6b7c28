//go:build unix

package diskcheck

import "syscall"

// FreeDiskSpace returns free disk space in bytes.
func (r *RealSpaceChecker) FreeDiskSpace(path string) (uint64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, err
	}
	// Available blocks * block size
	return stat.Bavail * uint64(stat.Bsize), nil // #nosec G115 -- block size is always positive
}
