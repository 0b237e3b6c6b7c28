package freesurfer

import (
	"fmt"
	"os"

	"github.com/Raab70/dax/pkg/check"
)

// LayoutCheck verifies that a subject directory contains the volumes and
// surfaces the viewer loads. The control point file is optional and only
// warns when absent.
type LayoutCheck struct {
	Subject Subject
	FS      Stater // injected for testing
}

// Results runs the layout check and returns one result per expected path.
// A missing subject directory short-circuits to a single failure.
func (c *LayoutCheck) Results() []check.Result {
	dir := check.Result{Name: fmt.Sprintf("subject: %s", c.Subject.Session)}

	info, err := c.FS.Stat(c.Subject.Dir())
	switch {
	case os.IsNotExist(err):
		return []check.Result{dir.Failf("no subject directory for session %s in %s", c.Subject.Session, c.Subject.Root)}
	case err != nil:
		return []check.Result{dir.Failf("stat failed: %v", err)}
	case !info.IsDir():
		return []check.Result{dir.Failf("expected directory, got file")}
	}

	dir.AddDetailf("path: %s", c.Subject.Dir())
	dir.Status = check.StatusOK
	results := []check.Result{dir}

	for _, name := range Volumes {
		results = append(results, c.fileResult(fmt.Sprintf("vol: mri/%s", name), c.Subject.Volume(name)))
	}
	for _, name := range Surfaces {
		results = append(results, c.fileResult(fmt.Sprintf("surf: surf/%s", name), c.Subject.Surface(name)))
	}

	ctrl := check.Result{Name: fmt.Sprintf("ctrl: %s", ControlPointsFile)}
	if c.Subject.HasControlPoints(c.FS) {
		ctrl.AddDetailf("path: %s", c.Subject.ControlPoints())
		ctrl.Status = check.StatusOK
		results = append(results, ctrl)
	} else {
		results = append(results, ctrl.Warn("not present"))
	}

	return results
}

func (c *LayoutCheck) fileResult(name, path string) check.Result {
	result := check.Result{Name: name}

	info, err := c.FS.Stat(path)
	switch {
	case os.IsNotExist(err):
		return result.Fail("not found", err)
	case err != nil:
		return result.Failf("stat failed: %v", err)
	case info.IsDir():
		return result.Failf("expected file, got directory")
	}

	result.AddDetailf("size: %d", info.Size())
	result.Status = check.StatusOK
	return result
}
