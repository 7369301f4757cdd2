// Package osutil holds operating system constants shared across packages
package osutil

import "os"

const Windows = "windows"

// ExitCode is a process exit status.
type ExitCode int

const ExitError ExitCode = 1

const (
	DirPermission  os.FileMode = 0o755
	FilePermission os.FileMode = 0o644
)

// Exit terminates the process with code.
func Exit(code ExitCode) {
	os.Exit(int(code))
}
