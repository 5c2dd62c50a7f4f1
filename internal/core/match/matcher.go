// Package match normalizes free-text symptom input against the fixed
// vocabulary.
package match

import (
	"strings"

	"github.com/agenthands/healthchat/internal/core/model"
	"github.com/agenthands/healthchat/internal/core/random"
)

const maxSuggestions = 3

// Matcher classifies comma-separated symptom tokens against a fixed,
// ordered vocabulary. Matching is bidirectional substring containment
// scanned in declaration order; the first hit wins. It does not
// minimize edit distance, so short ambiguous tokens resolve to
// whichever entry appears first.
type Matcher struct {
	vocabulary []string
	rng        random.Rand
}

func NewMatcher(vocabulary []string, rng random.Rand) *Matcher {
	if rng == nil {
		rng = random.Default()
	}
	return &Matcher{vocabulary: vocabulary, rng: rng}
}

// Vocabulary returns the fixed symptom list in declaration order.
func (m *Matcher) Vocabulary() []string {
	return m.vocabulary
}

// Match splits rawInput on commas, trims tokens, and classifies each
// one. Input order is preserved in Matched (duplicates included) since
// downstream severity sorting breaks ties on it. Unrecognized tokens
// get up to 3 suggestions drawn uniformly from the vocabulary; the
// draw is decorative, not similarity-based.
func (m *Matcher) Match(rawInput string) model.MatchResult {
	var result model.MatchResult

	for _, token := range strings.Split(rawInput, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if canonical, ok := m.closest(token); ok {
			result.Matched = append(result.Matched, canonical)
			continue
		}

		result.Unmatched = append(result.Unmatched, token)
		result.Suggestions = append(result.Suggestions, model.Suggestion{
			Original:    token,
			Suggestions: m.sample(maxSuggestions),
		})
	}

	return result
}

// closest returns the first vocabulary entry where either string
// contains the other.
func (m *Matcher) closest(token string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, known := range m.vocabulary {
		lower := strings.ToLower(known)
		if strings.Contains(lower, token) || strings.Contains(token, lower) {
			return known, true
		}
	}
	return "", false
}

// sample draws up to n vocabulary entries uniformly without replacement.
func (m *Matcher) sample(n int) []string {
	if n > len(m.vocabulary) {
		n = len(m.vocabulary)
	}
	if n == 0 {
		return nil
	}
	picks := make([]string, 0, n)
	for _, idx := range m.rng.Perm(len(m.vocabulary))[:n] {
		picks = append(picks, m.vocabulary[idx])
	}
	return picks
}
