package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRetryReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	content, err := ReadRetry(path, DefaultRetryPolicy())
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)
}

func TestReadRetryMissingFileFailsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := ReadRetry(path, DefaultRetryPolicy())
	require.Error(t, err)

	var opErr *FileOperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, uint(1), opErr.Attempts, "missing file is fatal, not retried")
	assert.True(t, os.IsNotExist(opErr.Unwrap()))
}
