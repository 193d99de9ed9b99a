package refactor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/lcr/internal/debug"
	"github.com/standardbeagle/lcr/internal/fileops"
	"github.com/standardbeagle/lcr/internal/rewrite"
)

// Operation is one refactor request. Apply runs it twice per invocation:
// once with execute=false to build the preview, then again against a fresh
// log with execute=true. The two passes recompute from live file state
// rather than replaying, so a change on disk between them is observed.
//
// Apply's error return is for validation failures that abort the whole
// operation; per-file failures go into the log instead.
type Operation interface {
	Describe() string
	Apply(ctx context.Context, execute bool, log *OperationLog) error
}

// RenameOp renames one file and updates references to its base name.
type RenameOp struct {
	eng     *Engine
	Path    string
	NewName string

	// ContentOnly updates references without moving the file.
	ContentOnly bool
	// NoContent moves the file without touching any content.
	NoContent bool
	// Related also sweeps sibling source files for references.
	Related bool
}

// NewRenameOp builds a rename of path to newName within its directory.
func NewRenameOp(eng *Engine, path, newName string) *RenameOp {
	return &RenameOp{eng: eng, Path: path, NewName: newName}
}

func (op *RenameOp) Describe() string {
	return fmt.Sprintf("rename %s -> %s", op.Path, op.NewName)
}

// newPath resolves the destination, keeping the old extension when the new
// name does not carry one.
func (op *RenameOp) newPath() string {
	name := op.NewName
	if filepath.Ext(name) == "" {
		name += filepath.Ext(op.Path)
	}
	return filepath.Join(filepath.Dir(op.Path), name)
}

func baseSymbol(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (op *RenameOp) Apply(ctx context.Context, execute bool, log *OperationLog) error {
	if _, err := os.Stat(op.Path); err != nil {
		return fmt.Errorf("cannot rename %s: %w", op.Path, err)
	}
	if op.ContentOnly && op.NoContent {
		return fmt.Errorf("--content-only and --no-content are mutually exclusive")
	}

	oldSym := baseSymbol(op.Path)
	newSym := baseSymbol(op.newPath())
	dst := op.newPath()

	if !op.NoContent {
		op.eng.rewriteFile(ctx, op.Path, oldSym, newSym, rewrite.KindAuto, execute, false, log)
	}

	if op.Related {
		for _, sibling := range op.relatedFiles() {
			op.eng.rewriteFile(ctx, sibling, oldSym, newSym, rewrite.KindAuto, execute, true, log)
		}
	}

	if !op.ContentOnly {
		op.move(execute, dst, log)
	}
	return nil
}

// relatedFiles lists source files in the same directory that might refer to
// the renamed file by name.
func (op *RenameOp) relatedFiles() []string {
	entries, err := os.ReadDir(filepath.Dir(op.Path))
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(filepath.Dir(op.Path), e.Name())
		if path == op.Path {
			continue
		}
		if rewrite.DetectLanguage(path) == rewrite.LangUnknown {
			continue
		}
		files = append(files, path)
	}
	return files
}

func (op *RenameOp) move(execute bool, dst string, log *OperationLog) {
	if !execute {
		if _, err := os.Stat(dst); err == nil {
			log.Add(RenameError, op.Path, fmt.Sprintf("destination %s already exists", dst))
			return
		}
		log.Add(Renamed, op.Path, "-> "+dst)
		log.AddFile(FileChange{Path: op.Path, NewPath: dst, Backend: rewrite.BackendText.String()})
		return
	}
	if err := fileops.MoveAtomic(op.Path, dst, op.eng.writePolicy()); err != nil {
		log.Add(RenameError, op.Path, err.Error())
		return
	}
	log.Add(Renamed, op.Path, "-> "+dst)
	log.AddFile(FileChange{Path: op.Path, NewPath: dst, Backend: rewrite.BackendText.String()})
}

// ReplaceOp rewrites a symbol across every file matching a glob.
type ReplaceOp struct {
	eng    *Engine
	OldSym string
	NewSym string
	Root   string
	Glob   string
	Kind   rewrite.Kind

	suggestions []string
}

// NewReplaceOp builds a symbol replace over files matching glob under root.
func NewReplaceOp(eng *Engine, oldSym, newSym, root, glob string, kind rewrite.Kind) *ReplaceOp {
	return &ReplaceOp{eng: eng, OldSym: oldSym, NewSym: newSym, Root: root, Glob: glob, Kind: kind}
}

func (op *ReplaceOp) Describe() string {
	return fmt.Sprintf("replace %s -> %s in %s", op.OldSym, op.NewSym, op.Glob)
}

// Suggestions returns near-miss identifiers when the replace touched nothing.
func (op *ReplaceOp) Suggestions() []string {
	return op.suggestions
}

func (op *ReplaceOp) Apply(ctx context.Context, execute bool, log *OperationLog) error {
	if op.OldSym == "" || op.NewSym == "" {
		return fmt.Errorf("both symbols must be non-empty")
	}

	files, err := resolveFiles(op.Root, op.Glob, op.eng.cfg)
	if err != nil {
		return fmt.Errorf("bad file glob %q: %w", op.Glob, err)
	}

	var g errgroup.Group
	g.SetLimit(op.eng.cfg.MaxWorkers)
	for _, path := range files {
		// Cancellation is honored at file boundaries only; a file that has
		// begun processing finishes, keeping every write atomic.
		if ctx.Err() != nil {
			break
		}
		p := path
		g.Go(func() error {
			op.eng.rewriteFile(ctx, p, op.OldSym, op.NewSym, op.Kind, execute, false, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if !execute {
		total := uint(0)
		for _, fc := range log.Files() {
			total += fc.Changes
		}
		if total == 0 && len(files) > 0 {
			op.suggestions = op.eng.suggestFor(files, op.OldSym)
		}
	}
	return nil
}

// BatchOp renames files whose names match a pattern, rewriting each name
// through a regular expression.
type BatchOp struct {
	eng         *Engine
	Pattern     *regexp.Regexp
	Replacement string
	Dir         string
	FileGlob    string
	Recursive   bool
}

// NewBatchOp compiles the name pattern and builds a batch file rename.
func NewBatchOp(eng *Engine, pattern, replacement, dir, fileGlob string, recursive bool) (*BatchOp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad name pattern %q: %w", pattern, err)
	}
	return &BatchOp{
		eng:         eng,
		Pattern:     re,
		Replacement: replacement,
		Dir:         dir,
		FileGlob:    fileGlob,
		Recursive:   recursive,
	}, nil
}

func (op *BatchOp) Describe() string {
	return fmt.Sprintf("batch rename %s -> %s in %s", op.Pattern, op.Replacement, op.Dir)
}

func (op *BatchOp) Apply(ctx context.Context, execute bool, log *OperationLog) error {
	glob := op.FileGlob
	if op.Recursive {
		glob = "**/" + op.FileGlob
	}

	files, err := resolveFiles(op.Dir, glob, op.eng.cfg)
	if err != nil {
		return fmt.Errorf("bad file glob %q: %w", op.FileGlob, err)
	}

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		base := filepath.Base(path)
		newBase := op.Pattern.ReplaceAllString(base, op.Replacement)
		if newBase == base {
			continue
		}
		dst := filepath.Join(filepath.Dir(path), newBase)
		debug.LogBatch("batch rename %s -> %s (execute=%v)\n", path, dst, execute)

		if !execute {
			if _, err := os.Stat(dst); err == nil {
				log.Add(RenameError, path, fmt.Sprintf("destination %s already exists", dst))
				continue
			}
			log.Add(Renamed, path, "-> "+dst)
			log.AddFile(FileChange{Path: path, NewPath: dst, Backend: rewrite.BackendRegex.String()})
			continue
		}

		if err := fileops.MoveAtomic(path, dst, op.eng.writePolicy()); err != nil {
			log.Add(RenameError, path, err.Error())
			continue
		}
		log.Add(Renamed, path, "-> "+dst)
		log.AddFile(FileChange{Path: path, NewPath: dst, Backend: rewrite.BackendRegex.String()})
	}
	return nil
}
