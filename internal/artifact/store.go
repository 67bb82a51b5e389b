// Package artifact loads the pre-fit model and scaler parameter blobs the
// prediction pipeline consumes. Artifacts are immutable after loading:
// embedded defaults ship with the binary, and either blob can be overridden
// with a file produced by a newer training run.
package artifact

import (
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ecopredict/ecopredict/internal/features"
	"github.com/ecopredict/ecopredict/internal/model"
)

// Model is the deserialized regression artifact.
type Model struct {
	SchemaVersion  string              `json:"schema_version"`
	Algorithm      string              `json:"algorithm"`
	Trained        string              `json:"trained"`
	TrainingWindow string              `json:"training_window"`
	FeatureNames   []string            `json:"feature_names"`
	Coefficients   []float64           `json:"coefficients"`
	Intercept      float64             `json:"intercept"`
	Vocabulary     features.Vocabulary `json:"vocabulary"`
}

// Parameters returns the coefficient set in the form the predictor consumes.
func (m *Model) Parameters() model.ModelParameters {
	return model.ModelParameters{
		Coefficients: m.Coefficients,
		Intercept:    m.Intercept,
	}
}

// Scaler is the deserialized standardization artifact.
type Scaler struct {
	SchemaVersion string    `json:"schema_version"`
	FeatureNames  []string  `json:"feature_names"`
	Mean          []float64 `json:"mean"`
	Scale         []float64 `json:"scale"`
}

// Parameters returns the standardization statistics in the form the
// normalizer consumes.
func (s *Scaler) Parameters() model.ScalerParameters {
	return model.ScalerParameters{
		Mean:  s.Mean,
		Scale: s.Scale,
	}
}

// Store provides parse-once access to the model and scaler artifacts.
// Parsing happens on first access; the parsed artifacts are immutable and
// safe for concurrent readers.
type Store struct {
	modelPath  string
	scalerPath string
	logger     zerolog.Logger

	once   sync.Once
	err    error
	model  *Model
	scaler *Scaler
}

// NewStore creates a Store. Empty paths select the embedded defaults; a
// non-empty path overrides the corresponding artifact with a file.
func NewStore(modelPath, scalerPath string, logger zerolog.Logger) *Store {
	return &Store{
		modelPath:  modelPath,
		scalerPath: scalerPath,
		logger:     logger,
	}
}

// init parses both artifacts exactly once.
func (s *Store) init() error {
	s.once.Do(func() {
		modelRaw, src, err := readArtifact(s.modelPath, rawModelJSON)
		if err != nil {
			s.err = fmt.Errorf("read model artifact: %w", err)
			return
		}

		var m Model
		if err := json.Unmarshal(modelRaw, &m); err != nil {
			s.err = fmt.Errorf("parse model artifact: %w", err)
			return
		}
		if err := validateModel(&m); err != nil {
			s.err = fmt.Errorf("invalid model artifact: %w", err)
			return
		}

		scalerRaw, scalerSrc, err := readArtifact(s.scalerPath, rawScalerJSON)
		if err != nil {
			s.err = fmt.Errorf("read scaler artifact: %w", err)
			return
		}

		var sc Scaler
		if err := json.Unmarshal(scalerRaw, &sc); err != nil {
			s.err = fmt.Errorf("parse scaler artifact: %w", err)
			return
		}
		if err := validateScaler(&sc); err != nil {
			s.err = fmt.Errorf("invalid scaler artifact: %w", err)
			return
		}

		if len(m.Coefficients) != len(sc.Mean) {
			s.err = &model.DimensionMismatchError{
				Stage: "scaler",
				Want:  len(m.Coefficients),
				Got:   len(sc.Mean),
			}
			return
		}

		s.model = &m
		s.scaler = &sc

		s.logger.Info().
			Str("model_source", src).
			Str("scaler_source", scalerSrc).
			Str("schema_version", m.SchemaVersion).
			Str("algorithm", m.Algorithm).
			Int("features", len(m.Coefficients)).
			Msg("artifacts loaded")

		if m.SchemaVersion != sc.SchemaVersion {
			// Lengths already agree; a version skew is worth a warning but
			// not fatal, since mixed point releases share a schema.
			s.logger.Warn().
				Str("model_version", m.SchemaVersion).
				Str("scaler_version", sc.SchemaVersion).
				Msg("model and scaler artifacts carry different schema versions")
		}
	})
	return s.err
}

// Model returns the parsed regression artifact.
func (s *Store) Model() (*Model, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	return s.model, nil
}

// Scaler returns the parsed standardization artifact.
func (s *Store) Scaler() (*Scaler, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	return s.scaler, nil
}

// readArtifact returns the file contents for path, or the embedded fallback
// when path is empty, along with a source label for logging.
func readArtifact(path string, embedded []byte) ([]byte, string, error) {
	if path == "" {
		return embedded, "embedded", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return raw, path, nil
}

func validateModel(m *Model) error {
	if len(m.Coefficients) == 0 {
		return fmt.Errorf("no coefficients")
	}
	if len(m.FeatureNames) != 0 && len(m.FeatureNames) != len(m.Coefficients) {
		return &model.DimensionMismatchError{
			Stage: "model",
			Want:  len(m.FeatureNames),
			Got:   len(m.Coefficients),
		}
	}
	if len(m.Vocabulary.Gases) == 0 || len(m.Vocabulary.Units) == 0 || len(m.Vocabulary.Industries) == 0 {
		return fmt.Errorf("vocabulary incomplete")
	}
	return nil
}

func validateScaler(s *Scaler) error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("no standardization statistics")
	}
	if len(s.Mean) != len(s.Scale) {
		return &model.DimensionMismatchError{
			Stage: "scaler",
			Want:  len(s.Mean),
			Got:   len(s.Scale),
		}
	}
	return nil
}
