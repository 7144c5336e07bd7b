package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("hello world", "hello world"))
}

func TestSimilarityEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("   ", "\t\n"))
	assert.Equal(t, 0.0, Similarity("hello", ""))
}

func TestSimilarityPartialOverlap(t *testing.T) {
	// {a b c} vs {a b d}: 2 shared, 4 in union
	assert.Equal(t, 0.5, Similarity("a b c", "a b d"))
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"오늘 점심 뭐 먹을까", "오늘 저녁 뭐 먹을까"},
		{"a b c", "c d e"},
		{"", "hello"},
		{"hello world", "HELLO WORLD"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "pair %q", p)
	}
}

func TestSimilarityCaseAndRepeatInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Hello hello WORLD", "world hello"))
}

func TestSimilarityPunctuationTokensDistinct(t *testing.T) {
	// "world" and "world?" stay separate tokens.
	assert.Less(t, Similarity("hello world", "hello world?"), 1.0)
}
