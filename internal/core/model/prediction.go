package model

import "time"

// Condition is one entry of the demo condition database.
type Condition struct {
	Name           string   `json:"name" toml:"name"`
	Description    string   `json:"description" toml:"description"`
	Precautions    []string `json:"precautions" toml:"precautions"`
	CommonSymptoms []string `json:"common_symptoms" toml:"common_symptoms"`
}

// Suggestion pairs an unrecognized input token with up to 3 vocabulary
// entries offered as alternatives.
type Suggestion struct {
	Original    string   `json:"original"`
	Suggestions []string `json:"suggestions"`
}

// MatchResult classifies raw input tokens against the vocabulary.
// Matched preserves input order and may contain duplicates.
type MatchResult struct {
	Matched     []string     `json:"matched"`
	Unmatched   []string     `json:"unmatched"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// SymptomDetail carries the synthetic per-symptom scores shown to the
// user. Severity is in [3,7], importance in [0.1,0.9); neither is
// derived from clinical data.
type SymptomDetail struct {
	Symptom    string  `json:"symptom"`
	Severity   int     `json:"severity"`
	Importance float64 `json:"importance"`
}

// Prediction is a single ranked condition with its confidence.
type Prediction struct {
	Disease     string   `json:"disease"`
	Probability float64  `json:"probability"`
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
}

// PredictionResult is the full outcome of one prediction call. Either
// Error is set (no valid symptoms) or TopPrediction is set; both
// variants carry DemoMode so the formatter can label fallback output.
type PredictionResult struct {
	Error             string          `json:"error,omitempty"`
	TopPrediction     *Prediction     `json:"top_prediction,omitempty"`
	Alternatives      []Prediction    `json:"alternative_predictions,omitempty"`
	MatchedSymptoms   []string        `json:"matched_symptoms,omitempty"`
	SymptomDetails    []SymptomDetail `json:"symptom_details,omitempty"`
	UnmatchedSymptoms []string        `json:"unmatched_symptoms,omitempty"`
	Suggestions       []Suggestion    `json:"symptom_suggestions,omitempty"`
	DemoMode          bool            `json:"demo_mode"`
	Timestamp         time.Time       `json:"timestamp,omitzero"`
}

// IsError reports whether the result is the no-valid-symptoms variant.
func (r *PredictionResult) IsError() bool {
	return r.Error != ""
}
