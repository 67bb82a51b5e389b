package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.5, cfg.Advisor.ConfidenceCutoff)
	assert.Equal(t, 0.05, cfg.Advisor.Thresholds.Moderate)
	assert.Equal(t, 0.2, cfg.Quality.Weights.Reliability)
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "2"
quality:
  weights:
    reliability: 0.4
    temporal: 0.15
    geographic: 0.15
    technological: 0.15
    collection: 0.15
advisor:
  thresholds:
    moderate: 0.04
    high: 0.08
    critical: 0.2
  confidence_cutoff: 0.6
`), 0o600))

	cfg, err := Load(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "2", cfg.Version)
	assert.Equal(t, 0.4, cfg.Quality.Weights.Reliability)
	assert.Equal(t, 0.04, cfg.Advisor.Thresholds.Moderate)
	assert.Equal(t, 0.6, cfg.Advisor.ConfidenceCutoff)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
advisor:
  confidence_cutoff: 0.7
`), 0o600))

	cfg, err := Load(path, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.Advisor.ConfidenceCutoff)
	// Untouched sections keep the reference values.
	assert.Equal(t, Default().Quality.Weights, cfg.Quality.Weights)
	assert.Equal(t, Default().Advisor.Thresholds, cfg.Advisor.Thresholds)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
quality:
  wieghts:
    reliability: 0.4
`), 0o600))

	_, err := Load(path, zerolog.Nop())
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_RejectsInvalidWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
quality:
  weights:
    reliability: 0.9
    temporal: 0.9
    geographic: 0.2
    technological: 0.2
    collection: 0.2
`), 0o600))

	_, err := Load(path, zerolog.Nop())
	assert.ErrorContains(t, err, "quality weights")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), zerolog.Nop())
	assert.ErrorContains(t, err, "read config")
}

func TestValidate_ConfidenceCutoffRange(t *testing.T) {
	cfg := Default()
	cfg.Advisor.ConfidenceCutoff = 1.5
	assert.Error(t, cfg.Validate())

	cfg.Advisor.ConfidenceCutoff = -0.1
	assert.Error(t, cfg.Validate())

	cfg.Advisor.ConfidenceCutoff = 1.0
	assert.NoError(t, cfg.Validate())
}
