// Package rewrite turns symbol renames into edited file content.
//
// Two backends share one contract: a scope-precise Tree-sitter pass used
// when a grammar exists for the language and the file parses cleanly, and a
// comment/string-aware text substitution used as the fallback. The AST pass
// is declaration-targeted, not binding-resolved: it rewrites declaration and
// statically matching reference spans without full semantic scope analysis.
package rewrite

import (
	"github.com/standardbeagle/lcr/internal/debug"
)

// Backend identifies which substitution strategy produced a result.
type Backend uint8

const (
	// BackendText is the comment/string-aware line scanner.
	BackendText Backend = iota
	// BackendRegex is pattern-driven name substitution (batch file renames).
	BackendRegex
	// BackendAST is the Tree-sitter declaration-targeted pass.
	BackendAST
)

// String returns the backend name used in reports
func (b Backend) String() string {
	switch b {
	case BackendAST:
		return "ast"
	case BackendRegex:
		return "regex"
	default:
		return "text"
	}
}

// Kind narrows which declarations an AST rewrite targets.
type Kind uint8

const (
	KindAuto Kind = iota
	KindFunction
	KindClass
	KindVariable
)

// String returns the kind name used in flags and reports
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindVariable:
		return "variable"
	default:
		return "auto"
	}
}

// ParseKind maps a --symbol-type flag value to a Kind.
// Unrecognized values fall back to auto rather than failing: the kind is a
// narrowing hint, not a correctness requirement.
func ParseKind(s string) Kind {
	switch s {
	case "function", "method", "func":
		return KindFunction
	case "class", "type", "struct":
		return KindClass
	case "variable", "var", "field":
		return KindVariable
	default:
		return KindAuto
	}
}

// Rewriter applies symbol renames to file content, selecting the most
// precise backend available for the language.
type Rewriter struct {
	ast *TreeSitterRewriter
}

// New creates a Rewriter with all supported Tree-sitter grammars registered.
func New() *Rewriter {
	return &Rewriter{ast: NewTreeSitterRewriter()}
}

// Rewrite replaces occurrences of oldSym with newSym in content and reports
// the number of textual spans changed plus the backend used. Zero changes
// means no write is warranted; oldSym == newSym is always zero changes.
func (r *Rewriter) Rewrite(content []byte, oldSym, newSym string, lang Language, kind Kind) ([]byte, int, Backend) {
	if oldSym == "" || oldSym == newSym {
		return content, 0, BackendText
	}

	if r.ast.Supports(lang) {
		newContent, changes, ok := r.ast.Rewrite(content, oldSym, newSym, lang, kind)
		if ok {
			debug.LogRewrite("ast backend: %d change(s) for %q in %s file\n", changes, oldSym, lang)
			return newContent, changes, BackendAST
		}
		debug.LogRewrite("parse failed for %s file, falling back to text backend\n", lang)
	}

	newContent, changes := RewriteText(content, oldSym, newSym)
	return newContent, changes, BackendText
}

// Identifiers returns the distinct identifier names in content, used to
// build "did you mean" suggestions when a rename matches nothing. Only
// available for languages with a grammar; otherwise nil.
func (r *Rewriter) Identifiers(content []byte, lang Language) []string {
	if !r.ast.Supports(lang) {
		return nil
	}
	return r.ast.Identifiers(content, lang)
}
