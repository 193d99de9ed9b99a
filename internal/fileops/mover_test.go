package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveAtomicRenamesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "OldName.java")
	dst := filepath.Join(dir, "NewName.java")
	require.NoError(t, os.WriteFile(src, []byte("class OldName {}"), 0644))

	err := MoveAtomic(src, dst, testPolicy())
	require.NoError(t, err)

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source must be gone after move")
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "class OldName {}", string(data))
}

func TestMoveAtomicRefusesClobber(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("source"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("existing"), 0644))

	err := MoveAtomic(src, dst, testPolicy())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDestinationExists))

	// Neither endpoint modified.
	srcData, _ := os.ReadFile(src)
	dstData, _ := os.ReadFile(dst)
	assert.Equal(t, "source", string(srcData))
	assert.Equal(t, "existing", string(dstData))
}

func TestMoveAtomicMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := MoveAtomic(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "b.txt"), testPolicy())

	var opErr *FileOperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "move", opErr.Op)
}

func TestMoveAtomicRetryBound(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("source"), 0644))

	calls := 0
	orig := renameFile
	renameFile = func(oldpath, newpath string) error {
		calls++
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.ETXTBSY}
	}
	defer func() { renameFile = orig }()

	err := MoveAtomic(src, dst, RetryPolicy{MaxRetries: 2, RetryDelay: time.Millisecond})

	var opErr *FileOperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, uint(3), opErr.Attempts)
	assert.Equal(t, 3, calls)

	data, _ := os.ReadFile(src)
	assert.Equal(t, "source", string(data), "source must be untouched on failure")
}

func TestMoveAtomicRecoversFromTransientLock(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("source"), 0644))

	calls := 0
	orig := renameFile
	renameFile = func(oldpath, newpath string) error {
		calls++
		if calls == 1 {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EBUSY}
		}
		return os.Rename(oldpath, newpath)
	}
	defer func() { renameFile = orig }()

	require.NoError(t, MoveAtomic(src, dst, testPolicy()))
	assert.Equal(t, 2, calls)
	data, _ := os.ReadFile(dst)
	assert.Equal(t, "source", string(data))
}
