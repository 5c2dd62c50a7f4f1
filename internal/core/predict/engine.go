// Package predict scores the fixed condition database against matched
// symptoms and assembles the structured prediction result.
package predict

import (
	"sort"
	"time"

	"github.com/agenthands/healthchat/internal/core/model"
	"github.com/agenthands/healthchat/internal/core/random"
)

const (
	fallbackConfidence = 0.3
	maxAlternatives    = 3
)

// Engine ranks conditions by symptom overlap. It never returns errors:
// every branch (no match, no positive score, normal) is represented in
// the result value.
type Engine struct {
	conditions []model.Condition
	rng        random.Rand
	now        func() time.Time
}

func NewEngine(conditions []model.Condition, rng random.Rand) *Engine {
	if rng == nil {
		rng = random.Default()
	}
	return &Engine{
		conditions: conditions,
		rng:        rng,
		now:        time.Now,
	}
}

type scored struct {
	condition model.Condition
	score     int
}

// Predict ranks every condition against the matched symptoms and
// returns either the error variant (nothing matched) or the success
// variant with the primary prediction, up to 3 alternatives, and
// synthetic per-symptom details.
func (e *Engine) Predict(m model.MatchResult) *model.PredictionResult {
	if len(m.Matched) == 0 {
		return &model.PredictionResult{
			Error:             noMatchGuidance,
			UnmatchedSymptoms: m.Unmatched,
			Suggestions:       m.Suggestions,
			DemoMode:          true,
		}
	}

	// Set semantics: duplicate matched symptoms do not inflate scores.
	matchedSet := make(map[string]bool, len(m.Matched))
	for _, s := range m.Matched {
		matchedSet[s] = true
	}

	ranked := make([]scored, len(e.conditions))
	for i, cond := range e.conditions {
		score := 0
		for _, s := range cond.CommonSymptoms {
			if matchedSet[s] {
				score++
			}
		}
		ranked[i] = scored{condition: cond, score: score}
	}

	// Stable sort so equal scores keep database declaration order.
	// This decides which condition is primary on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var (
		primary    model.Condition
		confidence float64
		maxScore   int
	)
	if len(ranked) == 0 || ranked[0].score == 0 {
		// No overlap anywhere (an empty database lands here too).
		primary = fallbackCondition()
		confidence = fallbackConfidence
	} else {
		primary = ranked[0].condition
		maxScore = ranked[0].score
		confidence = min(0.95, 0.3+float64(ranked[0].score)/float64(maxScore)*0.65)
	}

	var alternatives []model.Prediction
	for i := 1; i < len(ranked) && i <= maxAlternatives; i++ {
		if ranked[i].score == 0 {
			continue
		}
		alt := ranked[i]
		alternatives = append(alternatives, model.Prediction{
			Disease:     alt.condition.Name,
			Probability: min(0.8, 0.2+float64(alt.score)/float64(maxScore)*0.6),
			Description: alt.condition.Description,
			Precautions: alt.condition.Precautions,
		})
	}

	details := make([]model.SymptomDetail, len(m.Matched))
	for i, symptom := range m.Matched {
		details[i] = model.SymptomDetail{
			Symptom:    symptom,
			Severity:   3 + e.rng.Intn(5),
			Importance: 0.1 + e.rng.Float64()*0.8,
		}
	}
	// Stable: equal severities keep input order.
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Severity > details[j].Severity
	})

	return &model.PredictionResult{
		TopPrediction: &model.Prediction{
			Disease:     primary.Name,
			Probability: confidence,
			Description: primary.Description,
			Precautions: primary.Precautions,
		},
		Alternatives:      alternatives,
		MatchedSymptoms:   m.Matched,
		SymptomDetails:    details,
		UnmatchedSymptoms: m.Unmatched,
		Suggestions:       m.Suggestions,
		DemoMode:          true,
		Timestamp:         e.now(),
	}
}
