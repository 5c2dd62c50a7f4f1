package match

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/healthchat/internal/core/predict"
)

func newTestMatcher() *Matcher {
	return NewMatcher(predict.DefaultVocabulary(), rand.New(rand.NewSource(42)))
}

func TestMatch_ExactTokens(t *testing.T) {
	m := newTestMatcher()

	result := m.Match("fever, cough, body aches")

	assert.Equal(t, []string{"fever", "cough", "body aches"}, result.Matched)
	assert.Empty(t, result.Unmatched)
	assert.Empty(t, result.Suggestions)
}

func TestMatch_PartialTokenResolvesLikeFullToken(t *testing.T) {
	m := newTestMatcher()

	// Prefix of a vocabulary entry: token is contained in "fever".
	assert.Equal(t, m.Match("fever").Matched, m.Match("fev").Matched)

	// Superstring: "high fever" contains the entry "fever".
	assert.Equal(t, []string{"fever"}, m.Match("high fever").Matched)
}

func TestMatch_FirstHitWins(t *testing.T) {
	m := newTestMatcher()

	// "ache" is contained in both "headache" and "body aches";
	// vocabulary order decides, and "headache" is declared first.
	result := m.Match("ache")
	assert.Equal(t, []string{"headache"}, result.Matched)
}

func TestMatch_DuplicatesPreservedInInputOrder(t *testing.T) {
	m := newTestMatcher()

	result := m.Match("cough, fever, cough")
	assert.Equal(t, []string{"cough", "fever", "cough"}, result.Matched)
}

func TestMatch_UnmatchedGetsThreeSuggestions(t *testing.T) {
	vocab := predict.DefaultVocabulary()
	m := NewMatcher(vocab, rand.New(rand.NewSource(42)))

	result := m.Match("xyz123")

	assert.Empty(t, result.Matched)
	assert.Equal(t, []string{"xyz123"}, result.Unmatched)
	assert.Len(t, result.Suggestions, 1)
	assert.Equal(t, "xyz123", result.Suggestions[0].Original)
	assert.Len(t, result.Suggestions[0].Suggestions, 3)

	// Drawn without replacement from the vocabulary.
	seen := map[string]bool{}
	for _, s := range result.Suggestions[0].Suggestions {
		assert.Contains(t, vocab, s)
		assert.False(t, seen[s], "suggestion %q repeated", s)
		seen[s] = true
	}
}

func TestMatch_SuggestionsCappedByVocabularySize(t *testing.T) {
	m := NewMatcher([]string{"fever", "cough"}, rand.New(rand.NewSource(1)))

	result := m.Match("zzz")
	assert.Len(t, result.Suggestions[0].Suggestions, 2)
}

func TestMatch_EmptyAndBlankInput(t *testing.T) {
	m := newTestMatcher()

	for _, input := range []string{"", "   ", ",,,", " , , "} {
		result := m.Match(input)
		assert.Empty(t, result.Matched, "input %q", input)
		assert.Empty(t, result.Unmatched, "input %q", input)
		assert.Empty(t, result.Suggestions, "input %q", input)
	}
}

func TestMatch_MixedMatchedAndUnmatched(t *testing.T) {
	m := newTestMatcher()

	result := m.Match("fever, notasymptom, cough")

	assert.Equal(t, []string{"fever", "cough"}, result.Matched)
	assert.Equal(t, []string{"notasymptom"}, result.Unmatched)
	assert.Len(t, result.Suggestions, 1)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	m := newTestMatcher()

	result := m.Match("FEVER, Sore Throat")
	assert.Equal(t, []string{"fever", "sore throat"}, result.Matched)
}
