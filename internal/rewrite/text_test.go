package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteTextBasic(t *testing.T) {
	out, n := RewriteText([]byte("price = compute(price)\n"), "price", "cost")
	assert.Equal(t, 2, n)
	assert.Equal(t, "cost = compute(cost)\n", string(out))
}

func TestRewriteTextLeftBoundaryOnly(t *testing.T) {
	// The char before a match must be a non-word char; the char after is
	// unchecked, so an occurrence that is itself a prefix gets extended.
	out, n := RewriteText([]byte("price priceinticks"), "price", "priceinticks")
	assert.Equal(t, 2, n)
	assert.Equal(t, "priceinticks priceinticksinticks", string(out))
}

func TestRewriteTextRejectsSuffixOccurrences(t *testing.T) {
	out, n := RewriteText([]byte("unit_price = 3\n"), "price", "cost")
	assert.Zero(t, n)
	assert.Equal(t, "unit_price = 3\n", string(out))
}

func TestRewriteTextSkipsCommentLines(t *testing.T) {
	src := "// price is in cents\n# price again\nprice = 1\n"
	out, n := RewriteText([]byte(src), "price", "cost")
	assert.Equal(t, 1, n)
	assert.Equal(t, "// price is in cents\n# price again\ncost = 1\n", string(out))
}

func TestRewriteTextSkipsTrailingComments(t *testing.T) {
	out, n := RewriteText([]byte("price = 1 // old price\n"), "price", "cost")
	assert.Equal(t, 1, n)
	assert.Equal(t, "cost = 1 // old price\n", string(out))
}

func TestRewriteTextSkipsStringLiterals(t *testing.T) {
	src := `log("price went up", price)` + "\n"
	out, n := RewriteText([]byte(src), "price", "cost")
	assert.Equal(t, 1, n)
	assert.Equal(t, `log("price went up", cost)`+"\n", string(out))
}

func TestRewriteTextHandlesEscapedQuotes(t *testing.T) {
	src := `s = "say \"price\"" + price` + "\n"
	out, n := RewriteText([]byte(src), "price", "cost")
	assert.Equal(t, 1, n)
	assert.Equal(t, `s = "say \"price\"" + cost`+"\n", string(out))
}

func TestRewriteTextCommentAndStringAwareness(t *testing.T) {
	src := "// old in comment\nString s = \"old value\";\nint old = 1;\n"
	out, n := RewriteText([]byte(src), "old", "new")
	assert.Equal(t, 1, n)
	assert.Equal(t, "// old in comment\nString s = \"old value\";\nint new = 1;\n", string(out))
}

func TestRewriteTextPreservesMissingFinalNewline(t *testing.T) {
	out, n := RewriteText([]byte("price = 1"), "price", "cost")
	assert.Equal(t, 1, n)
	assert.Equal(t, "cost = 1", string(out))
}

func TestRewriteTextNoChangesReturnsOriginal(t *testing.T) {
	src := []byte("total = 5\n")
	out, n := RewriteText(src, "price", "cost")
	assert.Zero(t, n)
	assert.Equal(t, src, out)
}

func TestSuggestRanksNearMisses(t *testing.T) {
	candidates := []string{"price", "prices", "priceTag", "total", "tax"}
	got := Suggest("pricce", candidates)
	assert.NotEmpty(t, got)
	assert.Equal(t, "price", got[0])
	assert.NotContains(t, got, "tax")
}

func TestSuggestExcludesExactMatch(t *testing.T) {
	got := Suggest("price", []string{"price"})
	assert.Empty(t, got)
}
