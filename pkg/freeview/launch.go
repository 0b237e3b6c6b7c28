package freeview

import (
	"os"
	"os/exec"
)

// Launcher starts an assembled viewer invocation.
type Launcher interface {
	Launch(cmd Command) error
}

// RealLauncher runs the viewer as a child process with inherited stdio
// and waits for it to exit.
type RealLauncher struct{}

func (l *RealLauncher) Launch(cmd Command) error {
	args := cmd.Args()
	execCmd := exec.Command(args[0], args[1:]...)
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	execCmd.Stdin = os.Stdin
	return execCmd.Run()
}

// ReplaceLauncher hands the current process over to the viewer instead
// of spawning a child. On Unix this uses syscall.Exec; on Windows it
// returns an error.
type ReplaceLauncher struct{}

// lookPath finds the viewer binary in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
