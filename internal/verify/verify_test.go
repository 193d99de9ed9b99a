package verify

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/lcr/internal/rewrite"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func requireTool(t *testing.T, tool string) {
	t.Helper()
	if _, err := exec.LookPath(tool); err != nil {
		t.Skipf("%s not available", tool)
	}
}

func TestCheckValidGoFile(t *testing.T) {
	requireTool(t, "gofmt")
	path := writeFile(t, t.TempDir(), "ok.go", "package main\n\nfunc main() {}\n")

	res := Check(context.Background(), path, rewrite.LangGo)
	assert.True(t, res.Checked)
	assert.True(t, res.OK)
}

func TestCheckBrokenGoFile(t *testing.T) {
	requireTool(t, "gofmt")
	path := writeFile(t, t.TempDir(), "broken.go", "package main\n\nfunc main( {\n")

	res := Check(context.Background(), path, rewrite.LangGo)
	assert.True(t, res.Checked)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
}

func TestCheckPythonCleansBytecode(t *testing.T) {
	requireTool(t, "python3")
	dir := t.TempDir()
	path := writeFile(t, dir, "mod.py", "def price():\n    return 1\n")

	res := Check(context.Background(), path, rewrite.LangPython)
	assert.True(t, res.Checked)
	assert.True(t, res.OK)

	_, err := os.Stat(filepath.Join(dir, "__pycache__"))
	assert.True(t, os.IsNotExist(err), "__pycache__ should be cleaned up")
}

func TestCheckMissingFile(t *testing.T) {
	res := Check(context.Background(), filepath.Join(t.TempDir(), "gone.go"), rewrite.LangGo)
	assert.False(t, res.Checked)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "cannot check")
}

func TestCheckUnknownLanguageSkips(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", "price list\n")

	res := Check(context.Background(), path, rewrite.LangUnknown)
	assert.False(t, res.Checked)
	assert.True(t, res.OK)
	assert.Contains(t, res.Message, "no syntax checker")
}

func TestCheckLargeFileSkipped(t *testing.T) {
	dir := t.TempDir()
	big := make([]byte, maxCheckSize+1)
	for i := range big {
		big[i] = 'a'
	}
	path := filepath.Join(dir, "big.go")
	require.NoError(t, os.WriteFile(path, big, 0644))

	res := Check(context.Background(), path, rewrite.LangGo)
	assert.False(t, res.Checked)
	assert.True(t, res.OK)
	assert.Contains(t, res.Message, "skipped")
}
