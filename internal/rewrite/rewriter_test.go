package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, LangGo, DetectLanguage("internal/server/main.go"))
	assert.Equal(t, LangPython, DetectLanguage("scripts/run.py"))
	assert.Equal(t, LangTypeScript, DetectLanguage("src/App.tsx"))
	assert.Equal(t, LangCPP, DetectLanguage("lib/engine.hpp"))
	assert.Equal(t, LangUnknown, DetectLanguage("README.md"))
	assert.Equal(t, LangUnknown, DetectLanguage("Makefile"))
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindFunction, ParseKind("function"))
	assert.Equal(t, KindFunction, ParseKind("method"))
	assert.Equal(t, KindClass, ParseKind("struct"))
	assert.Equal(t, KindVariable, ParseKind("var"))
	assert.Equal(t, KindAuto, ParseKind(""))
	assert.Equal(t, KindAuto, ParseKind("banana"))
}

func TestRewriteNoOpWhenSymbolsEqual(t *testing.T) {
	r := New()
	content := []byte("price := 1\n")
	out, changes, _ := r.Rewrite(content, "price", "price", LangGo, KindAuto)
	assert.Zero(t, changes)
	assert.Equal(t, content, out)
}

func TestRewriteGoFunctionAcrossFile(t *testing.T) {
	src := []byte(`package main

// price returns the list price.
func price() int {
	return 1
}

func main() {
	p := price()
	_ = p
	println("price")
}
`)
	r := New()
	out, changes, backend := r.Rewrite(src, "price", "cost", LangGo, KindAuto)

	assert.Equal(t, BackendAST, backend)
	assert.Equal(t, 2, changes)
	assert.Contains(t, string(out), "func cost() int")
	assert.Contains(t, string(out), "p := cost()")
	// Comment and string literal stay untouched.
	assert.Contains(t, string(out), "// price returns the list price.")
	assert.Contains(t, string(out), `println("price")`)
}

func TestRewriteKindNarrowingRequiresDeclaration(t *testing.T) {
	src := []byte(`package main

var price = 1

func main() {
	_ = price
}
`)
	r := New()
	out, changes, backend := r.Rewrite(src, "price", "cost", LangGo, KindFunction)

	assert.Equal(t, BackendAST, backend)
	assert.Zero(t, changes, "no function named price exists, so nothing should change")
	assert.Equal(t, src, out)

	_, changes, _ = r.Rewrite(src, "price", "cost", LangGo, KindVariable)
	assert.Equal(t, 2, changes)
}

func TestRewriteTypeScriptClass(t *testing.T) {
	src := []byte(`class Order {
	total(): number { return 0; }
}

const o = new Order();
`)
	r := New()
	out, changes, backend := r.Rewrite(src, "Order", "Invoice", LangTypeScript, KindClass)

	assert.Equal(t, BackendAST, backend)
	assert.Equal(t, 2, changes)
	assert.Contains(t, string(out), "class Invoice {")
	assert.Contains(t, string(out), "new Invoice()")
}

func TestRewriteFallsBackOnParseError(t *testing.T) {
	src := []byte("price := ((( \n")
	r := New()
	out, changes, backend := r.Rewrite(src, "price", "cost", LangGo, KindAuto)

	assert.Equal(t, BackendText, backend)
	assert.Equal(t, 1, changes)
	assert.Contains(t, string(out), "cost := (((")
}

func TestRewriteUnknownLanguageUsesTextBackend(t *testing.T) {
	src := []byte("set price to 10\n")
	r := New()
	out, changes, backend := r.Rewrite(src, "price", "cost", LangUnknown, KindAuto)

	assert.Equal(t, BackendText, backend)
	assert.Equal(t, 1, changes)
	assert.Equal(t, "set cost to 10\n", string(out))
}

func TestIdentifiersCollectsDistinctNames(t *testing.T) {
	src := []byte(`package main

func price() int { return tax + price() }
`)
	r := New()
	names := r.Identifiers(src, LangGo)
	require.NotEmpty(t, names)
	assert.Contains(t, names, "price")
	assert.Contains(t, names, "tax")

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate identifier %q", n)
		seen[n] = true
	}
}
