package refactor

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/lcr/internal/config"
	"github.com/standardbeagle/lcr/internal/fileops"
	"github.com/standardbeagle/lcr/internal/rewrite"
	"github.com/standardbeagle/lcr/internal/verify"
)

// Engine bundles the configuration and rewriter shared by all operations.
// Constructed once per invocation; nothing in it is global.
type Engine struct {
	cfg      *config.Config
	rewriter *rewrite.Rewriter
}

// NewEngine creates an Engine from resolved configuration.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg, rewriter: rewrite.New()}
}

func (e *Engine) writePolicy() fileops.RetryPolicy {
	return fileops.RetryPolicy{MaxRetries: e.cfg.MaxRetries, RetryDelay: e.cfg.RetryDelay}
}

func (e *Engine) readPolicy() fileops.RetryPolicy {
	return fileops.RetryPolicy{MaxRetries: e.cfg.ReadRetries, RetryDelay: e.cfg.RetryDelay}
}

// rewriteFile rewrites oldSym to newSym inside one file, writing the result
// when execute is set. Failures are recorded, never returned; the caller
// keeps going with the next file. quiet suppresses the NoChanges record for
// sweep passes that touch many unrelated files. Returns the change count.
func (e *Engine) rewriteFile(ctx context.Context, path, oldSym, newSym string, kind rewrite.Kind, execute, quiet bool, log *OperationLog) uint {
	content, err := fileops.ReadRetry(path, e.readPolicy())
	if err != nil {
		log.Add(WriteError, path, err.Error())
		return 0
	}

	lang := rewrite.DetectLanguage(path)
	newContent, changes, backend := e.rewriter.Rewrite(content, oldSym, newSym, lang, kind)
	if changes == 0 {
		if !quiet {
			log.Add(NoChanges, path, fmt.Sprintf("no occurrences of %q", oldSym))
		}
		return 0
	}

	if execute {
		if err := fileops.WriteAtomic(path, newContent, e.writePolicy()); err != nil {
			log.Add(WriteError, path, err.Error())
			return 0
		}
	}

	log.Add(ContentUpdated, path, fmt.Sprintf("%d change(s) via %s backend", changes, backend))
	log.AddFile(FileChange{
		Path:        path,
		Backend:     backend.String(),
		Changes:     uint(changes),
		Fingerprint: fmt.Sprintf("%016x", xxhash.Sum64(newContent)),
	})

	if execute && e.cfg.VerifyAfterWrite {
		res := verify.Check(ctx, path, lang)
		log.Add(CompileCheck, path, res.Message)
	}

	return uint(changes)
}

// suggestFor builds near-miss suggestions for a symbol that matched nothing,
// drawn from the identifiers actually present in the scanned files.
func (e *Engine) suggestFor(files []string, symbol string) []string {
	const sampleLimit = 20

	seen := make(map[string]bool)
	var candidates []string
	for i, path := range files {
		if i >= sampleLimit {
			break
		}
		content, err := fileops.ReadRetry(path, e.readPolicy())
		if err != nil {
			continue
		}
		for _, name := range e.rewriter.Identifiers(content, rewrite.DetectLanguage(path)) {
			if !seen[name] {
				seen[name] = true
				candidates = append(candidates, name)
			}
		}
	}
	return rewrite.Suggest(symbol, candidates)
}
