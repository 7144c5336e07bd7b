// Package moderation classifies question and answer text against fixed
// keyword blacklists. Both predicates are pure; recording block events is
// the caller's job.
package moderation

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

type lexicon struct {
	Input  []string `yaml:"input"`
	Output []string `yaml:"output"`
}

var lists lexicon

func init() {
	if err := yaml.Unmarshal(lexiconYAML, &lists); err != nil {
		panic("moderation: bad embedded lexicon: " + err.Error())
	}
	for i, kw := range lists.Input {
		lists.Input[i] = strings.ToLower(kw)
	}
	for i, kw := range lists.Output {
		lists.Output[i] = strings.ToLower(kw)
	}
}

// UnsafeInput reports whether a question contains any blacklisted phrase.
// Matching is substring containment, not word-boundary aware: a keyword
// inside a longer word still matches. Over-blocking is the accepted
// tradeoff for a safety filter.
func UnsafeInput(text string) bool {
	return containsAny(text, lists.Input)
}

// UnsafeOutput reports whether a generated answer contains any blacklisted
// imperative phrase. Same containment semantics as UnsafeInput, against an
// independent list.
func UnsafeOutput(text string) bool {
	return containsAny(text, lists.Output)
}

func containsAny(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
