package rewrite

import (
	"sort"
	"strings"
	"sync"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// languageSupport holds the parser and compiled queries for one language.
// declQuery locates declarations (used to verify a kind-narrowed rename has
// a matching declaration in the file); identQuery locates every identifier
// span that could name the symbol.
//
// A Tree-sitter parser is not safe for concurrent parses, so mu serializes
// access per language. Batch workers on different languages still run in
// parallel.
type languageSupport struct {
	mu         sync.Mutex
	parser     *tree_sitter.Parser
	language   *tree_sitter.Language
	declQuery  *tree_sitter.Query
	identQuery *tree_sitter.Query
}

// TreeSitterRewriter rewrites identifier spans using Tree-sitter parse trees.
type TreeSitterRewriter struct {
	languages map[Language]*languageSupport
}

// NewTreeSitterRewriter registers all bundled grammars. A grammar whose
// queries fail to compile is silently skipped; files in that language route
// to the text backend instead.
func NewTreeSitterRewriter() *TreeSitterRewriter {
	r := &TreeSitterRewriter{languages: make(map[Language]*languageSupport)}
	r.setupGo()
	r.setupPython()
	r.setupJavaScript()
	r.setupTypeScript()
	r.setupJava()
	r.setupCSharp()
	r.setupCpp()
	r.setupRust()
	r.setupPHP()
	r.setupZig()
	return r
}

// Supports reports whether the language has a registered grammar.
func (r *TreeSitterRewriter) Supports(lang Language) bool {
	_, ok := r.languages[lang]
	return ok
}

// register compiles the queries and stores the support entry. The Tree-sitter
// Go binding can return a typed nil error from NewQuery, so success is judged
// by the query pointer, not the error.
func (r *TreeSitterRewriter) register(lang Language, languagePtr unsafe.Pointer, declQueryStr, identQueryStr string) {
	parser := tree_sitter.NewParser()
	language := tree_sitter.NewLanguage(languagePtr)
	if err := parser.SetLanguage(language); err != nil {
		return
	}

	declQuery, _ := tree_sitter.NewQuery(language, declQueryStr)
	identQuery, _ := tree_sitter.NewQuery(language, identQueryStr)
	if declQuery == nil || identQuery == nil {
		return
	}

	r.languages[lang] = &languageSupport{
		parser:     parser,
		language:   language,
		declQuery:  declQuery,
		identQuery: identQuery,
	}
}

// span is a half-open byte range in the source content.
type span struct {
	start uint
	end   uint
}

// Rewrite replaces identifier spans whose text equals oldSym. The bool result
// is false when the file could not be parsed cleanly and the caller should
// fall back to the text backend. A kind other than KindAuto additionally
// requires a declaration of that kind named oldSym somewhere in the file;
// without one the rewrite is a clean zero-change result.
func (r *TreeSitterRewriter) Rewrite(content []byte, oldSym, newSym string, lang Language, kind Kind) ([]byte, int, bool) {
	sup, ok := r.languages[lang]
	if !ok {
		return content, 0, false
	}
	sup.mu.Lock()
	defer sup.mu.Unlock()

	tree := sup.parser.Parse(content, nil)
	if tree == nil {
		return content, 0, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return content, 0, false
	}

	if kind != KindAuto && !r.hasDeclaration(sup, root, content, oldSym, kind) {
		return content, 0, true
	}

	spans := r.matchingSpans(sup, root, content, oldSym)
	if len(spans) == 0 {
		return content, 0, true
	}

	return applySpans(content, spans, newSym), len(spans), true
}

// hasDeclaration checks whether any declaration capture of the requested
// kind names oldSym.
func (r *TreeSitterRewriter) hasDeclaration(sup *languageSupport, root *tree_sitter.Node, content []byte, oldSym string, kind Kind) bool {
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(sup.declQuery, root, content)
	captureNames := sup.declQuery.CaptureNames()

	for {
		match := matches.Next()
		if match == nil {
			break
		}
		for _, c := range match.Captures {
			name := captureNames[c.Index]
			if !strings.HasSuffix(name, ".name") {
				continue
			}
			prefix := strings.TrimSuffix(name, ".name")
			if !kindMatchesCapture(kind, prefix) {
				continue
			}
			if string(content[c.Node.StartByte():c.Node.EndByte()]) == oldSym {
				return true
			}
		}
	}
	return false
}

// kindMatchesCapture maps the capture prefixes used by the declaration
// queries onto the coarser Kind taxonomy.
func kindMatchesCapture(kind Kind, prefix string) bool {
	switch kind {
	case KindFunction:
		switch prefix {
		case "function", "method", "constructor":
			return true
		}
	case KindClass:
		switch prefix {
		case "class", "struct", "interface", "enum", "type", "record", "trait", "annotation", "delegate":
			return true
		}
	case KindVariable:
		switch prefix {
		case "variable", "field", "property", "event", "constant":
			return true
		}
	}
	return false
}

// matchingSpans collects deduplicated, sorted byte ranges of identifiers
// whose text equals oldSym. Alternation patterns can capture the same node
// more than once, so spans are deduplicated by start offset.
func (r *TreeSitterRewriter) matchingSpans(sup *languageSupport, root *tree_sitter.Node, content []byte, oldSym string) []span {
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(sup.identQuery, root, content)

	seen := make(map[uint]bool)
	var spans []span
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		for _, c := range match.Captures {
			start := c.Node.StartByte()
			end := c.Node.EndByte()
			if seen[start] {
				continue
			}
			if string(content[start:end]) != oldSym {
				continue
			}
			seen[start] = true
			spans = append(spans, span{start: start, end: end})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

// applySpans replaces each span with newSym, working back to front so
// earlier offsets stay valid.
func applySpans(content []byte, spans []span, newSym string) []byte {
	out := make([]byte, len(content))
	copy(out, content)
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		rest := append([]byte(newSym), out[s.end:]...)
		out = append(out[:s.start], rest...)
	}
	return out
}

// Identifiers returns the distinct identifier names appearing in content.
func (r *TreeSitterRewriter) Identifiers(content []byte, lang Language) []string {
	sup, ok := r.languages[lang]
	if !ok {
		return nil
	}
	sup.mu.Lock()
	defer sup.mu.Unlock()

	tree := sup.parser.Parse(content, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(sup.identQuery, tree.RootNode(), content)

	seen := make(map[string]bool)
	var names []string
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		for _, c := range match.Captures {
			name := string(content[c.Node.StartByte():c.Node.EndByte()])
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
