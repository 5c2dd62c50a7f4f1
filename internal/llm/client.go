package llm

import (
	"context"
)

// ModelClient is the minimal surface the remote predictor needs from a
// model provider.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
