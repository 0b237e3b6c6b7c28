// Package freesurfer models the on-disk layout of a FreeSurfer subjects
// tree: one directory per session under the subjects root, with volumes in
// mri/, surfaces in surf/ and manual edits in tmp/.
package freesurfer

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvSubjectsDir names the environment variable holding the subjects root.
const EnvSubjectsDir = "SUBJECTS_DIR"

// ControlPointsFile is the manual control point file, relative to the
// subject directory.
const ControlPointsFile = "tmp/control.dat"

// Volumes are the mri/ files the viewer loads, in load order.
var Volumes = []string{"T1.mgz", "aparc+aseg.mgz", "wm.mgz", "brainmask.mgz"}

// Surfaces are the surf/ files the viewer loads, in load order.
var Surfaces = []string{"lh.white", "lh.pial", "rh.white", "rh.pial"}

// Subject identifies one recon-all output directory under the subjects root.
// The session label is used verbatim as the directory name.
type Subject struct {
	Root    string
	Session string
}

// Dir returns the subject directory path.
func (s Subject) Dir() string {
	return filepath.Join(s.Root, s.Session)
}

// Volume returns the path of a volume under mri/.
func (s Subject) Volume(name string) string {
	return filepath.Join(s.Root, s.Session, "mri", name)
}

// Surface returns the path of a surface under surf/.
func (s Subject) Surface(name string) string {
	return filepath.Join(s.Root, s.Session, "surf", name)
}

// ControlPoints returns the path of the manual control point file.
func (s Subject) ControlPoints() string {
	return filepath.Join(s.Root, s.Session, filepath.FromSlash(ControlPointsFile))
}

// Verify confirms the subject directory exists.
func (s Subject) Verify(fsys Stater) error {
	info, err := fsys.Stat(s.Dir())
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no subject directory for session %s in %s", s.Session, s.Root)
		}
		return fmt.Errorf("cannot access subject directory %s: %w", s.Dir(), err)
	}
	if !info.IsDir() {
		return fmt.Errorf("subject path %s is not a directory", s.Dir())
	}
	return nil
}

// HasControlPoints reports whether the manual control point file exists.
func (s Subject) HasControlPoints(fsys Stater) bool {
	info, err := fsys.Stat(s.ControlPoints())
	return err == nil && !info.IsDir()
}

// SubjectsRoot reads the subjects root from SUBJECTS_DIR. An empty value
// counts as unset.
func SubjectsRoot(env EnvGetter) (string, error) {
	root, ok := env.LookupEnv(EnvSubjectsDir)
	if !ok || root == "" {
		return "", fmt.Errorf("%s environment variable is not set", EnvSubjectsDir)
	}
	return root, nil
}
