//go:build unix

package freeview

import (
	"syscall"
)

// execFunc is replaced in tests.
var execFunc = syscall.Exec

// Launch replaces the current process with the viewer.
// This is the Unix implementation using syscall.Exec.
func (l *ReplaceLauncher) Launch(cmd Command) error {
	argv := cmd.Args()
	binary, err := lookPath(argv[0])
	if err != nil {
		return err
	}

	// argv[0] must be the program name by convention.
	return execFunc(binary, argv, environ())
}
