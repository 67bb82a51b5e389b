// Package config holds the versioned engine configuration: the quality
// weighting, impact thresholds, and confidence cutoff. Keeping these as
// explicit configuration means retraining or threshold tuning never touches
// pipeline logic.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ecopredict/ecopredict/internal/advisor"
	"github.com/ecopredict/ecopredict/internal/quality"
)

// Config is the engine configuration document.
type Config struct {
	Version string `yaml:"version"`

	Quality struct {
		Weights quality.Weights `yaml:"weights"`
	} `yaml:"quality"`

	Advisor struct {
		Thresholds       advisor.Thresholds `yaml:"thresholds"`
		ConfidenceCutoff float64            `yaml:"confidence_cutoff"`
	} `yaml:"advisor"`
}

// Default returns the reference configuration: equal quality weights, the
// calibrated impact thresholds, and the 0.5 confidence cutoff.
func Default() Config {
	var cfg Config
	cfg.Version = "1"
	cfg.Quality.Weights = quality.DefaultWeights()
	cfg.Advisor.Thresholds = advisor.DefaultThresholds()
	cfg.Advisor.ConfidenceCutoff = advisor.DefaultConfidenceCutoff
	return cfg
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if err := c.Quality.Weights.Validate(); err != nil {
		return fmt.Errorf("quality weights: %w", err)
	}
	if err := c.Advisor.Thresholds.Validate(); err != nil {
		return fmt.Errorf("advisor thresholds: %w", err)
	}
	if c.Advisor.ConfidenceCutoff < 0 || c.Advisor.ConfidenceCutoff > 1 {
		return fmt.Errorf("advisor confidence cutoff must be in [0,1], got %v", c.Advisor.ConfidenceCutoff)
	}
	return nil
}

// Load reads a YAML configuration file. An empty path returns Default().
// Unknown keys are rejected so a typo never silently falls back to a
// default weighting or threshold.
func Load(path string, logger zerolog.Logger) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	logger.Debug().
		Str("path", path).
		Str("version", cfg.Version).
		Float64("confidence_cutoff", cfg.Advisor.ConfidenceCutoff).
		Msg("engine configuration loaded")

	return cfg, nil
}
