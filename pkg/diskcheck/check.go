// Package diskcheck verifies free disk space before large downloads land
// in the subjects tree.
package diskcheck

import (
	"github.com/Raab70/dax/pkg/check"
)

// Check verifies the filesystem holding Path has at least MinFree bytes
// available.
type Check struct {
	Path    string
	MinFree uint64
	Checker SpaceChecker // injected for testing
}

// Run executes the disk space check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "disk: " + c.Path,
	}

	if c.Checker == nil {
		c.Checker = &RealSpaceChecker{}
	}

	free, err := c.Checker.FreeDiskSpace(c.Path)
	if err != nil {
		return result.Failf("cannot check free space: %v", err)
	}

	result.AddDetailf("free: %s", FormatSize(free))

	if free < c.MinFree {
		return result.Failf("free space %s < required %s", FormatSize(free), FormatSize(c.MinFree))
	}

	result.Status = check.StatusOK
	return result
}
