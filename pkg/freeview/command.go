// Package freeview assembles freeview invocations for FreeSurfer subjects
// and launches them. Display attributes use freeview's colon syntax, e.g.
// mri/wm.mgz:colormap=heat:opacity=0.4:visible=1.
package freeview

import (
	"fmt"
	"strings"

	"github.com/Raab70/dax/pkg/freesurfer"
)

// Fixed display attributes. The segmentation loads hidden under the lut
// colormap, white matter loads under the heat colormap, and white/pial
// surfaces get blue/red outlines.
const (
	overlayOpacity     = 0.4
	edgeThickness      = 1
	controlPointRadius = 1
)

// Volume is a volume layer with its display attributes.
type Volume struct {
	Path     string
	Colormap string  // empty for the default grayscale
	Opacity  float64 // 0 leaves the attribute off
	Visible  bool
}

func (v Volume) arg() string {
	var b strings.Builder
	b.WriteString(v.Path)
	if v.Colormap != "" {
		fmt.Fprintf(&b, ":colormap=%s", v.Colormap)
	}
	if v.Opacity > 0 {
		fmt.Fprintf(&b, ":opacity=%g", v.Opacity)
	}
	fmt.Fprintf(&b, ":visible=%d", boolAttr(v.Visible))
	return b.String()
}

// Surface is a surface layer with its outline attributes.
type Surface struct {
	Path          string
	EdgeColor     string
	EdgeThickness int
}

func (s Surface) arg() string {
	return fmt.Sprintf("%s:edgecolor=%s:edgethickness=%d", s.Path, s.EdgeColor, s.EdgeThickness)
}

// ControlPoints is the manual control point layer.
type ControlPoints struct {
	Path   string
	Radius int
}

func (c ControlPoints) arg() string {
	return fmt.Sprintf("%s:radius=%d", c.Path, c.Radius)
}

// Command is a fully assembled viewer invocation.
type Command struct {
	Viewer        string
	Volumes       []Volume
	Surfaces      []Surface
	ControlPoints *ControlPoints
}

// Args returns the invocation as an argument list, viewer binary first.
// The list is passed to exec verbatim; no shell is involved.
func (c Command) Args() []string {
	args := []string{c.Viewer}
	if len(c.Volumes) > 0 {
		args = append(args, "-v")
		for _, v := range c.Volumes {
			args = append(args, v.arg())
		}
	}
	if len(c.Surfaces) > 0 {
		args = append(args, "-f")
		for _, s := range c.Surfaces {
			args = append(args, s.arg())
		}
	}
	if c.ControlPoints != nil {
		args = append(args, "-c", c.ControlPoints.arg())
	}
	return args
}

// String returns the command line as printed before launch.
func (c Command) String() string {
	return strings.Join(c.Args(), " ")
}

// ForSubject assembles the viewer invocation for one subject. The mapping
// is deterministic given the subject paths and withControlPoints.
func ForSubject(viewer string, subj freesurfer.Subject, withControlPoints bool) Command {
	cmd := Command{
		Viewer: viewer,
		Volumes: []Volume{
			{Path: subj.Volume("T1.mgz"), Visible: true},
			{Path: subj.Volume("aparc+aseg.mgz"), Colormap: "lut", Opacity: overlayOpacity, Visible: false},
			{Path: subj.Volume("wm.mgz"), Colormap: "heat", Opacity: overlayOpacity, Visible: true},
			{Path: subj.Volume("brainmask.mgz"), Visible: true},
		},
		Surfaces: []Surface{
			{Path: subj.Surface("lh.white"), EdgeColor: "blue", EdgeThickness: edgeThickness},
			{Path: subj.Surface("lh.pial"), EdgeColor: "red", EdgeThickness: edgeThickness},
			{Path: subj.Surface("rh.white"), EdgeColor: "blue", EdgeThickness: edgeThickness},
			{Path: subj.Surface("rh.pial"), EdgeColor: "red", EdgeThickness: edgeThickness},
		},
	}
	if withControlPoints {
		cmd.ControlPoints = &ControlPoints{Path: subj.ControlPoints(), Radius: controlPointRadius}
	}
	return cmd
}

func boolAttr(b bool) int {
	if b {
		return 1
	}
	return 0
}
