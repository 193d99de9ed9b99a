//go:build !windows

package fileops

import "syscall"

// classifyErrno maps unix error codes to lock contention.
// EWOULDBLOCK is an alias for EAGAIN on the supported platforms and is
// covered by the EAGAIN case.
func classifyErrno(errno syscall.Errno) Classification {
	switch errno {
	case syscall.EACCES, // permission denied on a path we just statted writable
		syscall.EBUSY,   // resource busy
		syscall.ETXTBSY, // text file busy (binary being executed)
		syscall.EAGAIN:  // resource temporarily unavailable
		return Locked
	}
	return Fatal
}
