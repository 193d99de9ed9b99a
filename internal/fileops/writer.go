package fileops

import (
	"os"
	"path/filepath"
	"time"

	"github.com/standardbeagle/lcr/internal/debug"
)

// renameFile is the rename syscall seam; overridden in tests to simulate
// persistent lock contention without a second process.
var renameFile = os.Rename

// fileState snapshots a target path's existence and permission bits before a
// destructive write so permissions can be restored after the atomic swap.
type fileState struct {
	exists bool
	mode   os.FileMode
}

func captureFileState(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, mode: info.Mode().Perm()}
}

// WriteAtomic writes content to path such that a concurrent reader observes
// either the complete old content or the complete new content, even if this
// process is killed mid-write.
//
// The content is written to a uniquely-named temp file in the same directory
// as path (same-filesystem placement keeps the final rename atomic), flushed
// durably, then swapped into place with a single rename. Swap failures are
// classified: transient lock contention is retried under policy with a fresh
// temp file per attempt; anything else aborts immediately.
//
// Exhausted lock retries surface as *FileOperationError carrying the attempt
// count; all other failures as *AtomicWriteError. Write-phase failures are
// never retried - a partial write is a caller bug, not a lock conflict.
func WriteAtomic(path string, content []byte, policy RetryPolicy) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewAtomicWriteError("mkdir", path, err)
	}

	var attempts uint
	for {
		attempts++

		tmp, err := writeTemp(dir, filepath.Base(path), content)
		if err != nil {
			return NewAtomicWriteError("write", path, err).WithAttempts(attempts)
		}

		state := captureFileState(path)

		swapErr := replaceFile(tmp, path)
		if swapErr == nil {
			if state.exists {
				// Best-effort: restoring the original permission bits is not
				// safety-critical.
				_ = os.Chmod(path, state.mode)
			}
			debug.LogWrite("swapped %s in %d attempt(s)\n", path, attempts)
			return nil
		}

		_ = os.Remove(tmp)

		if Classify(swapErr) == Locked {
			if attempts <= policy.MaxRetries {
				debug.LogWrite("swap of %s locked (attempt %d), retrying in %v\n",
					path, attempts, policy.RetryDelay)
				time.Sleep(policy.RetryDelay)
				continue
			}
			return NewFileOperationError("replace", path, swapErr).WithAttempts(attempts)
		}
		return NewAtomicWriteError("replace", path, swapErr).WithAttempts(attempts)
	}
}

// writeTemp creates a unique temp file next to the target, writes the full
// content and forces it to stable storage. The temp file is removed on any
// failure; on success its path is returned for the swap.
func writeTemp(dir, base string, content []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return "", err
	}
	tmp := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return tmp, nil
}
