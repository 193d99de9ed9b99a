package refactor

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/lcr/internal/config"
	"github.com/standardbeagle/lcr/internal/debug"
)

// resolveFiles walks root and returns the regular files whose root-relative
// slash path matches pattern and none of the exclusions. Exclusions combine
// the built-in set, patterns from configuration, and build output
// directories detected from the project's build files.
func resolveFiles(root, pattern string, cfg *config.Config) ([]string, error) {
	excludes := config.DefaultExclusions()
	excludes = append(excludes, cfg.Exclude...)
	excludes = append(excludes, config.DetectBuildArtifacts(root)...)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			// Prune excluded directories early instead of matching every
			// file under them.
			dirAsContent := rel + "/x"
			for _, ex := range excludes {
				if matched, _ := doublestar.Match(ex, dirAsContent); matched {
					return fs.SkipDir
				}
			}
			return nil
		}

		matched, matchErr := doublestar.Match(pattern, rel)
		if matchErr != nil {
			return matchErr
		}
		if !matched {
			return nil
		}
		for _, ex := range excludes {
			if m, _ := doublestar.Match(ex, rel); m {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	debug.LogBatch("resolved %d file(s) for pattern %q under %s\n", len(files), pattern, root)
	return files, nil
}
