package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "vol: mri/T1.mgz", "env: SUBJECTS_DIR"
	Status  Status   // OK, WARN or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed. Warnings count as passing.
func (r Result) OK() bool {
	return r.Status != StatusFail
}
