package predict

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/healthchat/internal/core/model"
)

// Database bundles a symptom vocabulary with its condition records.
// Both sequences are order-significant: vocabulary order drives match
// precedence, condition order drives score tie-breaks.
type Database struct {
	Symptoms   []string          `toml:"symptoms"`
	Conditions []model.Condition `toml:"conditions"`
}

// DefaultData returns the built-in demo database.
func DefaultData() Database {
	return Database{
		Symptoms:   DefaultVocabulary(),
		Conditions: DefaultDatabase(),
	}
}

// LoadDatabase reads a replacement vocabulary/condition database from a
// TOML file and validates its invariants.
func LoadDatabase(path string) (Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Database{}, fmt.Errorf("failed to read conditions file '%s': %w", path, err)
	}

	var db Database
	if err := toml.Unmarshal(data, &db); err != nil {
		return Database{}, fmt.Errorf("failed to parse conditions TOML: %w", err)
	}
	if err := db.Validate(); err != nil {
		return Database{}, fmt.Errorf("invalid conditions file '%s': %w", path, err)
	}
	return db, nil
}

// Validate enforces the startup invariants: symptom names lowercase
// and unique, condition names unique, common symptoms drawn from the
// vocabulary.
func (db Database) Validate() error {
	if len(db.Symptoms) == 0 {
		return fmt.Errorf("no symptoms declared")
	}

	symptoms := make(map[string]bool, len(db.Symptoms))
	for _, s := range db.Symptoms {
		if s != strings.ToLower(strings.TrimSpace(s)) {
			return fmt.Errorf("symptom %q is not trimmed lowercase", s)
		}
		if symptoms[s] {
			return fmt.Errorf("duplicate symptom %q", s)
		}
		symptoms[s] = true
	}

	names := make(map[string]bool, len(db.Conditions))
	for _, c := range db.Conditions {
		if c.Name == "" {
			return fmt.Errorf("condition with empty name")
		}
		if names[c.Name] {
			return fmt.Errorf("duplicate condition %q", c.Name)
		}
		names[c.Name] = true
		for _, s := range c.CommonSymptoms {
			if !symptoms[s] {
				return fmt.Errorf("condition %q references unknown symptom %q", c.Name, s)
			}
		}
	}
	return nil
}
