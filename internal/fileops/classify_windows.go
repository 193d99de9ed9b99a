//go:build windows

package fileops

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// classifyErrno maps Windows error codes to lock contention. Sharing and
// lock violations are the usual signature of an editor or antivirus scanner
// holding an exclusive handle; access-denied shows up the same way when the
// file itself is writable.
func classifyErrno(errno syscall.Errno) Classification {
	switch errno {
	case windows.ERROR_SHARING_VIOLATION,
		windows.ERROR_LOCK_VIOLATION,
		windows.ERROR_ACCESS_DENIED:
		return Locked
	}
	return Fatal
}
