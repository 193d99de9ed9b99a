package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRelative(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "home", "user", "project")

	inside := filepath.Join(root, "src", "main.go")
	assert.Equal(t, filepath.Join("src", "main.go"), ToRelative(inside, root))

	outside := filepath.Join(string(filepath.Separator), "other", "file.go")
	assert.Equal(t, outside, ToRelative(outside, root))

	assert.Equal(t, "src/main.go", ToRelative("src/main.go", root), "relative input passes through")
	assert.Equal(t, "", ToRelative("", root))
	assert.Equal(t, inside, ToRelative(inside, ""))
}

func TestToRelativeAll(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "proj")
	paths := []string{
		filepath.Join(root, "a.go"),
		filepath.Join(root, "sub", "b.go"),
	}
	got := ToRelativeAll(paths, root)
	assert.Equal(t, []string{"a.go", filepath.Join("sub", "b.go")}, got)
	assert.NotSame(t, &paths[0], &got[0])
}
