package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type PredictorConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type DataConfig struct {
	ConditionsPath string `toml:"conditions_path"`
}

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Predictor PredictorConfig `toml:"predictor"`
	Data      DataConfig      `toml:"data"`
}

// Default is the configuration used when no config file is present:
// the built-in demo predictor on port 8080.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080"},
		Predictor: PredictorConfig{Provider: "demo"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("PREDICTOR_PROVIDER"); v != "" {
		c.Predictor.Provider = v
	}
	if v := os.Getenv("PREDICTOR_MODEL"); v != "" {
		c.Predictor.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.Predictor.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.Predictor.BaseURL = v
	}
	if v := os.Getenv("CONDITIONS_PATH"); v != "" {
		c.Data.ConditionsPath = v
	}
}
