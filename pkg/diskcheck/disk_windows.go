//go:build windows

package diskcheck

import "errors"

// FreeDiskSpace is not supported on Windows.
func (r *RealSpaceChecker) FreeDiskSpace(path string) (uint64, error) {
	return 0, errors.New("disk space check not supported on Windows")
}
