// Package verify runs advisory syntax checks on rewritten files.
//
// A check never blocks or fails a refactor: the result is reported so the
// user knows whether the rename left the file compiling. Files are checked
// with whatever language tool is on PATH; a missing tool is reported, not
// treated as an error.
package verify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/standardbeagle/lcr/internal/debug"
	"github.com/standardbeagle/lcr/internal/rewrite"
)

const (
	// checkTimeout bounds each tool invocation so a hung compiler cannot
	// stall a batch.
	checkTimeout = 10 * time.Second

	// maxCheckSize skips syntax checks on very large files where the check
	// cost outweighs its advisory value.
	maxCheckSize = 512 * 1024
)

// Result is the outcome of one syntax check.
type Result struct {
	Checked bool   // a tool actually ran
	OK      bool   // the tool reported no syntax errors
	Message string // tool output or the reason no check ran
}

// Check runs the language-appropriate syntax tool against path.
// It never returns an error; everything is folded into the Result.
func Check(ctx context.Context, path string, lang rewrite.Language) Result {
	info, err := os.Stat(path)
	if err != nil {
		return Result{Message: fmt.Sprintf("cannot check: %v", err)}
	}
	if info.Size() > maxCheckSize {
		return Result{OK: true, Message: "skipped: file too large for syntax check"}
	}

	tool, args, cleanup := toolFor(path, lang)
	if tool == "" {
		return Result{OK: true, Message: fmt.Sprintf("no syntax checker for %s files", langName(lang))}
	}
	if _, err := exec.LookPath(tool); err != nil {
		if cleanup != nil {
			cleanup()
		}
		return Result{Message: fmt.Sprintf("cannot check: %s not found on PATH", tool)}
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, tool, args...)
	out, err := cmd.CombinedOutput()
	if cleanup != nil {
		cleanup()
	}

	if ctx.Err() == context.DeadlineExceeded {
		return Result{Checked: true, Message: fmt.Sprintf("%s timed out after %s", tool, checkTimeout)}
	}
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		debug.LogVerify("%s reported errors for %s: %s\n", tool, path, firstLine(msg))
		return Result{Checked: true, Message: msg}
	}

	return Result{Checked: true, OK: true, Message: "syntax ok"}
}

// toolFor picks the checker command for a file. The cleanup func removes
// artifacts the tool creates as a side effect of checking.
func toolFor(path string, lang rewrite.Language) (string, []string, func()) {
	switch lang {
	case rewrite.LangGo:
		return "gofmt", []string{"-e", "-l", path}, nil
	case rewrite.LangPython:
		return "python3", []string{"-m", "py_compile", path}, func() { removePycacheFor(path) }
	case rewrite.LangJavaScript:
		return "node", []string{"--check", path}, nil
	case rewrite.LangJava:
		tmpDir, err := os.MkdirTemp("", "lcr-javac-*")
		if err != nil {
			return "", nil, nil
		}
		return "javac", []string{"-d", tmpDir, path}, func() { os.RemoveAll(tmpDir) }
	case rewrite.LangPHP:
		return "php", []string{"-l", path}, nil
	}
	return "", nil, nil
}

// removePycacheFor deletes the bytecode py_compile writes next to a source
// file, both the modern __pycache__ entry and a legacy adjacent .pyc.
func removePycacheFor(path string) {
	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	cacheDir := filepath.Join(dir, "__pycache__")
	entries, err := os.ReadDir(cacheDir)
	if err == nil {
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), base+".") && strings.HasSuffix(e.Name(), ".pyc") {
				os.Remove(filepath.Join(cacheDir, e.Name()))
			}
		}
		// Remove the directory too if the check created it empty.
		if rest, err := os.ReadDir(cacheDir); err == nil && len(rest) == 0 {
			os.Remove(cacheDir)
		}
	}
	os.Remove(filepath.Join(dir, base+".pyc"))
}

func langName(lang rewrite.Language) string {
	if lang == rewrite.LangUnknown {
		return "unknown"
	}
	return string(lang)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
