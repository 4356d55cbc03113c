// Package config loads the buddy configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the responder exposes. All fields have working
// defaults; an absent config file is not an error.
type Config struct {
	// DataPath locates the question/answer dataset CSV.
	DataPath string `yaml:"data_path"`
	// MaxVocabulary caps the retrieval vocabulary size.
	MaxVocabulary int `yaml:"max_vocabulary"`
	// ConfidenceThreshold routes retrieval scores at or below it to the
	// empathetic fallback instead of the retrieved answer.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	// EncourageBelow is the reply character length under which an
	// encouragement suffix may be appended.
	EncourageBelow int `yaml:"encourage_below_chars"`
	// EncourageOdds is the probability gate for the encouragement suffix.
	EncourageOdds float64 `yaml:"encourage_odds"`
	// Hotlines are the contact lines rendered into the crisis reply.
	// Deployments outside the US should set locale-appropriate services.
	Hotlines []string `yaml:"hotlines"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads configuration from a YAML file and fills defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.DataPath == "" {
		c.DataPath = "data/support_corpus.csv"
	}
	if c.MaxVocabulary <= 0 {
		c.MaxVocabulary = 500
	}
	if c.ConfidenceThreshold == 0 {
		c.ConfidenceThreshold = 0.15
	}
	if c.EncourageBelow <= 0 {
		c.EncourageBelow = 200
	}
	if c.EncourageOdds == 0 {
		c.EncourageOdds = 0.6
	}
}

// Validate checks field ranges after defaulting.
func (c *Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold >= 1 {
		return fmt.Errorf("confidence_threshold must be in [0, 1), got %g", c.ConfidenceThreshold)
	}
	if c.EncourageOdds < 0 || c.EncourageOdds > 1 {
		return fmt.Errorf("encourage_odds must be in [0, 1], got %g", c.EncourageOdds)
	}
	return nil
}
