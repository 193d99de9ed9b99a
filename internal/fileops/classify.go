package fileops

import (
	"errors"
	"syscall"
)

// Classification is the verdict on a failed I/O operation: retry or abort.
type Classification uint8

const (
	// Fatal means the failure will not resolve on its own; never retried.
	Fatal Classification = iota
	// Locked means transient lock contention from another process (editor,
	// antivirus scanner, build tool) that may succeed if retried.
	Locked
)

// String returns a human-readable classification name
func (c Classification) String() string {
	if c == Locked {
		return "locked"
	}
	return "fatal"
}

// Classify inspects a failed I/O operation's platform error code and decides
// whether it is transient lock contention or fatal. This is the single seam
// isolating platform-dependent error semantics from the retry loop; the
// per-platform code lives in classify_unix.go and classify_windows.go.
//
// Classify is pure and side-effect-free. Errors that do not carry an OS
// error code are Fatal.
func Classify(err error) Classification {
	if err == nil {
		return Fatal
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return classifyErrno(errno)
	}
	return Fatal
}
