package predictor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	response string
	err      error
	prompt   string
}

func (f *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

const fakeResponse = `{
  "top_prediction": {"disease": "Influenza", "probability": 0.82, "description": "Flu", "precautions": ["Rest"]},
  "alternative_predictions": [{"disease": "Common Cold", "probability": 0.4, "description": "Cold", "precautions": []}],
  "matched_symptoms": ["fever", "cough"],
  "symptom_details": [{"symptom": "fever", "severity": 6, "importance": 0.5}],
  "unmatched_symptoms": []
}`

func TestRemote_ParsesModelResponse(t *testing.T) {
	client := &fakeModel{response: fakeResponse}
	r := NewRemote("openai", client, []string{"fever", "cough"})

	result, err := r.PredictFromText(context.Background(), "fever, cough")
	require.NoError(t, err)

	assert.Equal(t, "Influenza", result.TopPrediction.Disease)
	assert.Equal(t, 0.82, result.TopPrediction.Probability)
	assert.Len(t, result.Alternatives, 1)
	assert.Equal(t, []string{"fever", "cough"}, result.MatchedSymptoms)
	assert.False(t, result.DemoMode)
	assert.False(t, result.Timestamp.IsZero())

	// The prompt carries the vocabulary and the raw input.
	assert.Contains(t, client.prompt, "fever, cough")
}

func TestRemote_StripsCodeFences(t *testing.T) {
	client := &fakeModel{response: "```json\n" + fakeResponse + "\n```"}
	r := NewRemote("openai", client, []string{"fever"})

	result, err := r.PredictFromText(context.Background(), "fever")
	require.NoError(t, err)
	assert.Equal(t, "Influenza", result.TopPrediction.Disease)
}

func TestRemote_GenerationFailure(t *testing.T) {
	client := &fakeModel{err: fmt.Errorf("connection refused")}
	r := NewRemote("claude", client, []string{"fever"})

	_, err := r.PredictFromText(context.Background(), "fever")
	assert.ErrorContains(t, err, "model generation failed")
}

func TestRemote_RejectsMalformedResponse(t *testing.T) {
	for label, response := range map[string]string{
		"not json":               "I think it's the flu.",
		"missing top_prediction": `{"matched_symptoms": ["fever"]}`,
	} {
		client := &fakeModel{response: response}
		r := NewRemote("openai", client, []string{"fever"})

		_, err := r.PredictFromText(context.Background(), "fever")
		assert.Error(t, err, label)
	}
}

func TestRemote_Vocabulary(t *testing.T) {
	r := NewRemote("openai", &fakeModel{}, []string{"fever", "cough"})
	assert.Equal(t, []string{"fever", "cough"}, r.Vocabulary())
	assert.Equal(t, "openai", r.Name())
}
