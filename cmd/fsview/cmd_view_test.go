package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Raab70/dax/pkg/freesurfer"
	"github.com/Raab70/dax/pkg/freeview"
	"github.com/Raab70/dax/pkg/settings"
)

type mockLauncher struct {
	launched []freeview.Command
	err      error
}

func (m *mockLauncher) Launch(cmd freeview.Command) error {
	m.launched = append(m.launched, cmd)
	return m.err
}

func swapLauncher(l freeview.Launcher) (restore func()) {
	prev := viewLauncher
	viewLauncher = l
	return func() { viewLauncher = prev }
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	out, _ := io.ReadAll(r)
	return string(out)
}

func TestRunView_PrintsAndLaunches(t *testing.T) {
	root := t.TempDir()
	t.Setenv(freesurfer.EnvSubjectsDir, root)
	t.Setenv(settings.EnvSettings, filepath.Join(t.TempDir(), "none.yaml"))
	if err := os.MkdirAll(filepath.Join(root, "1234_MR1"), 0o755); err != nil {
		t.Fatal(err)
	}

	launcher := &mockLauncher{}
	restore := swapLauncher(launcher)
	defer restore()

	var runErr error
	out := captureOutput(func() {
		runErr = runView(nil, []string{"1234_MR1"})
	})
	if runErr != nil {
		t.Fatalf("runView() error = %v", runErr)
	}

	subj := freesurfer.Subject{Root: root, Session: "1234_MR1"}
	want := freeview.ForSubject("freeview", subj, false)

	if len(launcher.launched) != 1 {
		t.Fatalf("launched %d commands, want 1", len(launcher.launched))
	}
	if got := launcher.launched[0].String(); got != want.String() {
		t.Errorf("launched %q, want %q", got, want.String())
	}
	if !strings.HasPrefix(out, want.String()) {
		t.Errorf("output %q does not start with %q", out, want.String())
	}
}

func TestRunView_LoadsControlPoints(t *testing.T) {
	root := t.TempDir()
	t.Setenv(freesurfer.EnvSubjectsDir, root)
	t.Setenv(settings.EnvSettings, filepath.Join(t.TempDir(), "none.yaml"))

	subj := freesurfer.Subject{Root: root, Session: "1234_MR1"}
	writeFile(t, subj.ControlPoints(), "1.0 2.0 3.0")

	launcher := &mockLauncher{}
	restore := swapLauncher(launcher)
	defer restore()

	var runErr error
	captureOutput(func() {
		runErr = runView(nil, []string{"1234_MR1"})
	})
	if runErr != nil {
		t.Fatalf("runView() error = %v", runErr)
	}
	if len(launcher.launched) != 1 {
		t.Fatalf("launched %d commands, want 1", len(launcher.launched))
	}

	args := launcher.launched[0].Args()
	wantArg := subj.ControlPoints() + ":radius=1"
	found := false
	for i, a := range args {
		if a == "-c" && i+1 < len(args) && args[i+1] == wantArg {
			found = true
		}
	}
	if !found {
		t.Errorf("args %v missing control point flag %q", args, wantArg)
	}
}

func TestRunView_ConfiguredViewer(t *testing.T) {
	root := t.TempDir()
	t.Setenv(freesurfer.EnvSubjectsDir, root)
	cfgPath := filepath.Join(t.TempDir(), "fsview.yaml")
	writeFile(t, cfgPath, "viewer: freeview-dev\n")
	t.Setenv(settings.EnvSettings, cfgPath)
	if err := os.MkdirAll(filepath.Join(root, "1234_MR1"), 0o755); err != nil {
		t.Fatal(err)
	}

	launcher := &mockLauncher{}
	restore := swapLauncher(launcher)
	defer restore()

	var runErr error
	captureOutput(func() {
		runErr = runView(nil, []string{"1234_MR1"})
	})
	if runErr != nil {
		t.Fatalf("runView() error = %v", runErr)
	}
	if len(launcher.launched) != 1 {
		t.Fatalf("launched %d commands, want 1", len(launcher.launched))
	}
	if got := launcher.launched[0].Viewer; got != "freeview-dev" {
		t.Errorf("viewer = %q, want %q", got, "freeview-dev")
	}
}

func TestRunView_ExecUsesReplaceLauncher(t *testing.T) {
	root := t.TempDir()
	t.Setenv(freesurfer.EnvSubjectsDir, root)
	t.Setenv(settings.EnvSettings, filepath.Join(t.TempDir(), "none.yaml"))
	if err := os.MkdirAll(filepath.Join(root, "1234_MR1"), 0o755); err != nil {
		t.Fatal(err)
	}

	child := &mockLauncher{}
	replace := &mockLauncher{}
	restore := swapLauncher(child)
	defer restore()
	prevReplace := replaceLauncher
	replaceLauncher = replace
	defer func() { replaceLauncher = prevReplace }()

	viewExec = true
	defer func() { viewExec = false }()

	var runErr error
	captureOutput(func() {
		runErr = runView(nil, []string{"1234_MR1"})
	})
	if runErr != nil {
		t.Fatalf("runView() error = %v", runErr)
	}
	if len(replace.launched) != 1 {
		t.Errorf("replace launcher ran %d times, want 1", len(replace.launched))
	}
	if len(child.launched) != 0 {
		t.Errorf("child launcher ran %d times, want 0", len(child.launched))
	}
}

func TestRunView_LaunchFailureKeepsExitZero(t *testing.T) {
	root := t.TempDir()
	t.Setenv(freesurfer.EnvSubjectsDir, root)
	t.Setenv(settings.EnvSettings, filepath.Join(t.TempDir(), "none.yaml"))
	if err := os.MkdirAll(filepath.Join(root, "1234_MR1"), 0o755); err != nil {
		t.Fatal(err)
	}

	launcher := &mockLauncher{err: errors.New("no display")}
	restore := swapLauncher(launcher)
	defer restore()

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	var runErr error
	captureOutput(func() {
		runErr = runView(nil, []string{"1234_MR1"})
	})

	w.Close()
	os.Stderr = oldStderr
	errOut, _ := io.ReadAll(r)

	if runErr != nil {
		t.Fatalf("runView() error = %v, want nil", runErr)
	}
	if !strings.Contains(string(errOut), "no display") {
		t.Errorf("stderr %q does not mention the launch failure", string(errOut))
	}
}
