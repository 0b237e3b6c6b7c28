package viewercheck

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"

	"github.com/Raab70/dax/pkg/check"
)

func TestViewerCheck_NotFound(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}

	c := &Check{
		Viewer: "freeview",
		Runner: runner,
	}

	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusFail)
	}
	if result.Name != "viewer: freeview" {
		t.Errorf("Name = %q, want %q", result.Name, "viewer: freeview")
	}
}

func TestViewerCheck_FoundNoVersionConstraint(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/local/freesurfer/bin/freeview", nil
		},
		RunCommandContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			t.Fatal("version command must not run without a constraint")
			return "", "", nil
		},
	}

	c := &Check{
		Viewer: "freeview",
		Runner: runner,
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
	if len(result.Details) != 1 || result.Details[0] != "path: /usr/local/freesurfer/bin/freeview" {
		t.Errorf("Details = %v, want path detail only", result.Details)
	}
}

func TestViewerCheck_MinVersion(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		min        string
		wantStatus check.Status
	}{
		{"satisfied", "freeview 7.3.2", "7.0.0", check.StatusOK},
		{"equal", "freeview 7.0.0", "7.0.0", check.StatusOK},
		{"below", "freeview 6.0.0", "7.0.0", check.StatusFail},
		{"two part version", "freeview: stable v7.2", "7.1.0", check.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &MockRunner{
				LookPathFunc: func(file string) (string, error) {
					return "/usr/bin/freeview", nil
				},
				RunCommandContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
					return tt.output, "", nil
				},
			}

			c := &Check{
				Viewer:     "freeview",
				MinVersion: semver.MustParse(tt.min),
				Runner:     runner,
			}

			result := c.Run()
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (details: %v)", result.Status, tt.wantStatus, result.Details)
			}
		})
	}
}

func TestViewerCheck_VersionOnStderr(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/freeview", nil
		},
		RunCommandContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			return "", "freeview 7.4.1", nil
		},
	}

	c := &Check{
		Viewer:     "freeview",
		MinVersion: semver.MustParse("7.0.0"),
		Runner:     runner,
	}

	result := c.Run()
	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v (details: %v)", result.Status, check.StatusOK, result.Details)
	}
}

func TestViewerCheck_NoVersionInOutput(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/freeview", nil
		},
		RunCommandContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			return "no numbers here", "", nil
		},
	}

	c := &Check{
		Viewer:     "freeview",
		MinVersion: semver.MustParse("7.0.0"),
		Runner:     runner,
	}

	result := c.Run()
	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusFail)
	}
	if result.Err == nil || !strings.Contains(result.Err.Error(), "no version found") {
		t.Errorf("Err = %v, want no version found", result.Err)
	}
}

func TestViewerCheck_VersionCommandFails(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/freeview", nil
		},
		RunCommandContextFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			return "", "cannot connect to display", errors.New("exit status 1")
		},
	}

	c := &Check{
		Viewer:     "freeview",
		MinVersion: semver.MustParse("7.0.0"),
		Runner:     runner,
	}

	result := c.Run()
	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusFail)
	}

	var sawStderr bool
	for _, d := range result.Details {
		if strings.Contains(d, "cannot connect to display") {
			sawStderr = true
		}
	}
	if !sawStderr {
		t.Errorf("Details = %v, want stderr detail", result.Details)
	}
}
