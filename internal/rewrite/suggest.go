package rewrite

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

const (
	suggestionThreshold = 0.6
	maxSuggestions      = 3
)

// Suggest ranks candidate identifiers by similarity to the requested symbol.
// Used when a rename touches nothing: the likely cause is a typo, and the
// near-misses present in the file are the best correction hints.
func Suggest(symbol string, candidates []string) []string {
	type scored struct {
		name  string
		score float32
	}

	var matches []scored
	for _, cand := range candidates {
		if cand == symbol {
			continue
		}
		score, err := edlib.StringsSimilarity(symbol, cand, edlib.Levenshtein)
		if err != nil {
			continue
		}
		if score >= suggestionThreshold {
			matches = append(matches, scored{name: cand, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}
