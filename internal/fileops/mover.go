package fileops

import (
	"errors"
	"os"
	"time"

	"github.com/standardbeagle/lcr/internal/debug"
)

// ErrDestinationExists is returned when a move would clobber an existing
// file. Refusing to overwrite is a deliberate safety choice distinct from
// WriteAtomic, which does overwrite its target.
var ErrDestinationExists = errors.New("destination already exists")

// MoveAtomic renames src to dst with a single rename syscall, retrying
// transient lock contention at either endpoint under policy. src must
// exist; dst must not. Failure after exhausting retries surfaces as
// *FileOperationError carrying the attempt count, with src untouched.
func MoveAtomic(src, dst string, policy RetryPolicy) error {
	if _, err := os.Stat(src); err != nil {
		return NewFileOperationError("move", src, err).WithDest(dst)
	}
	if _, err := os.Stat(dst); err == nil {
		return NewFileOperationError("move", src, ErrDestinationExists).WithDest(dst)
	}

	var attempts uint
	for {
		attempts++

		err := renameFile(src, dst)
		if err == nil {
			debug.LogWrite("moved %s -> %s in %d attempt(s)\n", src, dst, attempts)
			return nil
		}

		if Classify(err) == Locked && attempts <= policy.MaxRetries {
			debug.LogWrite("move of %s locked (attempt %d), retrying in %v\n",
				src, attempts, policy.RetryDelay)
			time.Sleep(policy.RetryDelay)
			continue
		}
		return NewFileOperationError("move", src, err).WithDest(dst).WithAttempts(attempts)
	}
}
