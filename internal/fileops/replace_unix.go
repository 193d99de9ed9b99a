//go:build !windows

package fileops

// replaceFile atomically replaces dst with tmp. On POSIX filesystems
// rename(2) over an existing destination is atomic.
func replaceFile(tmp, dst string) error {
	return renameFile(tmp, dst)
}
