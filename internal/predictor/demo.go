package predictor

import (
	"context"

	"github.com/agenthands/healthchat/internal/core/match"
	"github.com/agenthands/healthchat/internal/core/model"
	"github.com/agenthands/healthchat/internal/core/predict"
	"github.com/agenthands/healthchat/internal/core/random"
)

// Demo is the fallback predictor: symptom-overlap scoring over the
// fixed condition database. It never returns an error.
type Demo struct {
	matcher *match.Matcher
	engine  *predict.Engine
}

func NewDemo(db predict.Database, rng random.Rand) *Demo {
	return &Demo{
		matcher: match.NewMatcher(db.Symptoms, rng),
		engine:  predict.NewEngine(db.Conditions, rng),
	}
}

func (d *Demo) Name() string { return "demo" }

func (d *Demo) PredictFromText(_ context.Context, symptoms string) (*model.PredictionResult, error) {
	return d.engine.Predict(d.matcher.Match(symptoms)), nil
}

func (d *Demo) Vocabulary() []string {
	return d.matcher.Vocabulary()
}
