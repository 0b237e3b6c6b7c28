//go:build windows

package freeview

import "errors"

// ErrReplaceNotSupported indicates process replacement is not available on Windows.
var ErrReplaceNotSupported = errors.New("process replacement not supported on Windows; run the viewer as a child process instead")

// Launch is not supported on Windows.
// Windows has no exec syscall that replaces the current process.
func (l *ReplaceLauncher) Launch(cmd Command) error {
	return ErrReplaceNotSupported
}
