//go:build windows

package fileops

import "os"

// replaceFile replaces dst with tmp. Atomic replace-over-existing may be
// unsupported on older Windows filesystems, so the pre-existing destination
// is removed first. A remove failure is reported as the swap failure so the
// caller's lock classification applies to it.
func replaceFile(tmp, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return err
		}
	}
	return renameFile(tmp, dst)
}
