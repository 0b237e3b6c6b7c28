// Package viewercheck verifies that the configured viewer binary is on
// PATH and, when asked, that its version is recent enough.
package viewercheck

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/Raab70/dax/pkg/check"
)

// DefaultTimeout bounds the version command.
const DefaultTimeout = 10 * time.Second

// versionRegex matches the first dotted version in the viewer's output,
// e.g. "freeview 7.3.2" or "FreeSurfer 7.2".
var versionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Check verifies the viewer binary and its version.
type Check struct {
	Viewer     string          // viewer binary name, e.g. "freeview"
	MinVersion *semver.Version // minimum version required (inclusive), nil to skip
	Timeout    time.Duration   // timeout for the version command (default: 10s)
	Runner     CmdRunner       // injected for testing
}

// Run executes the viewer check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("viewer: %s", c.Viewer),
	}

	path, err := c.Runner.LookPath(c.Viewer)
	if err != nil {
		return result.Failf("not found in PATH: %v", err)
	}
	result.AddDetailf("path: %s", path)

	if c.MinVersion == nil {
		result.Status = check.StatusOK
		return result
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommandContext(ctx, c.Viewer, "--version")
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("version command timed out after %s", timeout)
		}
		result.AddDetailf("version command failed: %v", err)
		if stderr != "" {
			result.AddDetailf("stderr: %s", stderr)
		}
		result.Status = check.StatusFail
		result.Err = err
		return result
	}

	// Some freeview builds report the version on stderr.
	output := stdout
	if output == "" {
		output = stderr
	}

	raw := versionRegex.FindString(output)
	if raw == "" {
		return result.Failf("no version found in output %q", strings.TrimSpace(output))
	}
	found, err := semver.NewVersion(raw)
	if err != nil {
		return result.Failf("could not parse version %q: %v", raw, err)
	}
	result.AddDetailf("version: %s", found)

	if found.LessThan(c.MinVersion) {
		return result.Failf("version %s < minimum %s", found, c.MinVersion)
	}

	result.Status = check.StatusOK
	return result
}
