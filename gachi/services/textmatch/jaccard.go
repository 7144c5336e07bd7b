// Package textmatch detects near-duplicate questions.
package textmatch

import "strings"

// Similarity computes Jaccard similarity between the whitespace token sets
// of a and b, lowercased. Tokens are a set, so word order and repetition do
// not matter. Punctuation stuck to a token keeps it distinct from the bare
// word; that is a known limitation, not something to normalize away.
// Two empty inputs score 0.
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = struct{}{}
	}
	return set
}
