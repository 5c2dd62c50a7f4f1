// Package predictor selects and wraps the active prediction backend:
// either the built-in demo predictor or a remote model server. Callers
// hold the interface and never branch on the concrete type.
package predictor

import (
	"context"
	"log"
	"strings"

	"github.com/agenthands/healthchat/internal/config"
	"github.com/agenthands/healthchat/internal/core/model"
	"github.com/agenthands/healthchat/internal/core/predict"
	"github.com/agenthands/healthchat/internal/core/random"
	"github.com/agenthands/healthchat/internal/llm"
)

// Predictor is the capability both backends expose.
type Predictor interface {
	// Name identifies the active backend for health/info reporting.
	Name() string
	// PredictFromText maps raw comma-separated symptoms to a result.
	PredictFromText(ctx context.Context, symptoms string) (*model.PredictionResult, error)
	// Vocabulary lists the known symptoms in their fixed order.
	Vocabulary() []string
}

// New constructs the configured predictor once, at startup. If the
// remote backend cannot be initialized the demo predictor is used
// instead, so the service always comes up able to answer.
func New(cfg config.PredictorConfig, db predict.Database, rng random.Rand) Predictor {
	provider := strings.ToLower(cfg.Provider)
	if provider == "" || provider == "demo" {
		return NewDemo(db, rng)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		log.Printf("Could not initialize %s predictor: %v. Using demo fallback predictor", provider, err)
		return NewDemo(db, rng)
	}
	return NewRemote(provider, client, db.Symptoms)
}
