// Package assessor parses XNAT assessor labels. A label has the form
// PROJECT-x-SUBJECT-x-SESSION-x-PROCTYPE, with an optional scan component
// before the proctype for scan-level assessors.
package assessor

import (
	"fmt"
	"strings"
)

// Separator joins the label components.
const Separator = "-x-"

// Label identifies one processing run on XNAT.
type Label struct {
	Project  string
	Subject  string
	Session  string
	Scan     string // empty for session-level assessors
	Proctype string
}

// Parse splits an assessor label into its components. Session-level
// labels have four components, scan-level labels five.
func Parse(s string) (Label, error) {
	parts := strings.Split(s, Separator)
	switch len(parts) {
	case 4:
		return Label{
			Project:  parts[0],
			Subject:  parts[1],
			Session:  parts[2],
			Proctype: parts[3],
		}, nil
	case 5:
		return Label{
			Project:  parts[0],
			Subject:  parts[1],
			Session:  parts[2],
			Scan:     parts[3],
			Proctype: parts[4],
		}, nil
	default:
		return Label{}, fmt.Errorf("invalid assessor label %q: want 4 or 5 components separated by %q", s, Separator)
	}
}

// String reassembles the label.
func (l Label) String() string {
	parts := []string{l.Project, l.Subject, l.Session}
	if l.Scan != "" {
		parts = append(parts, l.Scan)
	}
	parts = append(parts, l.Proctype)
	return strings.Join(parts, Separator)
}

// IsFreeSurfer reports whether the proctype names a FreeSurfer run,
// e.g. FS, FS_v6 or FreeSurfer_v7.
func (l Label) IsFreeSurfer() bool {
	return l.Proctype == "FS" ||
		strings.HasPrefix(l.Proctype, "FS_") ||
		strings.HasPrefix(l.Proctype, "FreeSurfer")
}
