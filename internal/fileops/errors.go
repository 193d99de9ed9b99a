package fileops

import (
	"fmt"
	"time"
)

// AtomicWriteError reports that a write could not be completed durably.
// It covers immediate write failures (temp file creation, short writes,
// fsync) and fatal swap failures.
type AtomicWriteError struct {
	Op         string
	Path       string
	Attempts   uint
	Underlying error
	Timestamp  time.Time
}

// NewAtomicWriteError creates a write error with context
func NewAtomicWriteError(op, path string, err error) *AtomicWriteError {
	return &AtomicWriteError{
		Op:         op,
		Path:       path,
		Attempts:   1,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithAttempts records how many swap attempts were made before failing
func (e *AtomicWriteError) WithAttempts(attempts uint) *AtomicWriteError {
	e.Attempts = attempts
	return e
}

// Error implements the error interface
func (e *AtomicWriteError) Error() string {
	return fmt.Sprintf("atomic write %s failed for %s after %d attempt(s): %v",
		e.Op, e.Path, e.Attempts, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *AtomicWriteError) Unwrap() error {
	return e.Underlying
}

// FileOperationError reports a higher-level operation failure: a move, or a
// write whose retries were exhausted by persistent locking. It carries the
// attempt count so a caller can decide whether to retry at a higher level.
type FileOperationError struct {
	Op         string
	Source     string
	Dest       string
	Attempts   uint
	Underlying error
	Timestamp  time.Time
}

// NewFileOperationError creates an operation error with context
func NewFileOperationError(op, source string, err error) *FileOperationError {
	return &FileOperationError{
		Op:         op,
		Source:     source,
		Attempts:   1,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithDest adds the destination path for move operations
func (e *FileOperationError) WithDest(dest string) *FileOperationError {
	e.Dest = dest
	return e
}

// WithAttempts records how many attempts were made before failing
func (e *FileOperationError) WithAttempts(attempts uint) *FileOperationError {
	e.Attempts = attempts
	return e
}

// Error implements the error interface
func (e *FileOperationError) Error() string {
	if e.Dest != "" {
		return fmt.Sprintf("file operation %s failed for %s -> %s after %d attempt(s): %v",
			e.Op, e.Source, e.Dest, e.Attempts, e.Underlying)
	}
	return fmt.Sprintf("file operation %s failed for %s after %d attempt(s): %v",
		e.Op, e.Source, e.Attempts, e.Underlying)
}

// Unwrap returns the underlying error
func (e *FileOperationError) Unwrap() error {
	return e.Underlying
}
