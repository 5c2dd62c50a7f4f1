package llm

import (
	"fmt"
	"strings"

	"github.com/agenthands/healthchat/internal/config"
)

// NewClient builds a model client for the configured provider. Ollama
// and other local servers are reached through the OpenAI-compatible
// path by setting base_url.
func NewClient(cfg config.PredictorConfig) (ModelClient, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "claude":
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	default:
		return nil, fmt.Errorf("unsupported model provider: %s", cfg.Provider)
	}
}
