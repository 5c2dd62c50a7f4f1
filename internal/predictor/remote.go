package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agenthands/healthchat/internal/core/model"
	"github.com/agenthands/healthchat/internal/llm"
)

const remotePromptTemplate = `You are a medical triage model. The known symptom vocabulary is:
%s

The patient reports: %s

Respond with ONLY a JSON object, no prose, with this shape:
{
  "top_prediction": {"disease": string, "probability": number between 0 and 1, "description": string, "precautions": [string]},
  "alternative_predictions": [{"disease": string, "probability": number, "description": string, "precautions": [string]}],
  "matched_symptoms": [string drawn from the vocabulary],
  "symptom_details": [{"symptom": string, "severity": integer 1-7, "importance": number between 0 and 1}],
  "unmatched_symptoms": [string]
}
List at most 3 alternative predictions.`

// Remote answers through a model server speaking a chat-completion
// API. The response must be the same PredictionResult JSON the demo
// predictor produces, so the formatter and handlers are agnostic to
// which backend ran.
type Remote struct {
	name       string
	client     llm.ModelClient
	vocabulary []string
}

func NewRemote(name string, client llm.ModelClient, vocabulary []string) *Remote {
	return &Remote{
		name:       name,
		client:     client,
		vocabulary: vocabulary,
	}
}

func (r *Remote) Name() string { return r.name }

func (r *Remote) Vocabulary() []string { return r.vocabulary }

func (r *Remote) PredictFromText(ctx context.Context, symptoms string) (*model.PredictionResult, error) {
	prompt := fmt.Sprintf(remotePromptTemplate, strings.Join(r.vocabulary, ", "), symptoms)

	raw, err := r.client.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model generation failed: %w", err)
	}

	var result model.PredictionResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	if result.TopPrediction == nil && result.Error == "" {
		return nil, fmt.Errorf("model response missing top_prediction")
	}

	result.DemoMode = false
	result.Timestamp = time.Now()
	return &result, nil
}

// stripFences removes a markdown code fence if the model wrapped its
// JSON in one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
