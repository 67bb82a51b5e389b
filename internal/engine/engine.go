// Package engine composes the prediction pipeline: boundary validation,
// feature encoding, standardization, the linear model, data-quality scoring,
// and the advisory recommendation. Every stage is a pure function; the only
// persistent state is the two immutable parameter sets loaded at startup, so
// an Engine is safe for concurrent use without coordination.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecopredict/ecopredict/internal/advisor"
	"github.com/ecopredict/ecopredict/internal/artifact"
	"github.com/ecopredict/ecopredict/internal/config"
	"github.com/ecopredict/ecopredict/internal/features"
	"github.com/ecopredict/ecopredict/internal/model"
	"github.com/ecopredict/ecopredict/internal/quality"
)

// Engine runs the prediction and data-quality scoring pipeline.
type Engine struct {
	encoder *features.Encoder
	scaler  model.ScalerParameters
	model   model.ModelParameters
	weights quality.Weights
	advisor *advisor.Advisor
	logger  zerolog.Logger
}

// New assembles an Engine from loaded artifacts and configuration.
//
// Schema consistency between the encoder output, the scaler, and the
// coefficient vector is checked here, once: a skew means the deployed
// artifacts are misconfigured, which is fatal rather than recoverable per
// request. The returned *model.DimensionMismatchError is distinct from user
// input errors so operators know to re-check deployed artifacts, not user
// data.
func New(m *artifact.Model, s *artifact.Scaler, cfg config.Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(m.Coefficients) != features.VectorLen {
		return nil, &model.DimensionMismatchError{
			Stage: "model",
			Want:  features.VectorLen,
			Got:   len(m.Coefficients),
		}
	}
	if len(s.Mean) != features.VectorLen || len(s.Scale) != features.VectorLen {
		return nil, &model.DimensionMismatchError{
			Stage: "scaler",
			Want:  features.VectorLen,
			Got:   len(s.Mean),
		}
	}

	return &Engine{
		encoder: features.NewEncoder(m.Vocabulary),
		scaler:  s.Parameters(),
		model:   m.Parameters(),
		weights: cfg.Quality.Weights,
		advisor: advisor.New(cfg.Advisor.Thresholds, cfg.Advisor.ConfidenceCutoff),
		logger:  logger,
	}, nil
}

// Vocabulary returns the category vocabulary the engine encodes against.
func (e *Engine) Vocabulary() features.Vocabulary {
	return e.encoder.Vocabulary()
}

// Predict runs the full pipeline for one request:
//
//	validate -> encode -> normalize -> predict -> score -> recommend
//
// Identical input yields identical output across calls. Validation errors
// (unknown category, out-of-range metric, missing field) are recoverable:
// the request is rejected with the offending field named and no partial
// result is produced.
func (e *Engine) Predict(req Request) (*Result, error) {
	start := time.Now()
	traceID := uuid.New().String()

	if err := req.validate(); err != nil {
		e.logRejected(traceID, req, err)
		return nil, err
	}

	vec, err := e.encoder.Encode(req.observation())
	if err != nil {
		e.logRejected(traceID, req, err)
		return nil, err
	}

	normalized, err := model.Normalize(vec, e.scaler)
	if err != nil {
		// Unreachable when New validated the schema; surfaced anyway so a
		// skew never produces a silent partial result.
		e.logRejected(traceID, req, err)
		return nil, err
	}

	prediction, err := model.Predict(normalized, e.model)
	if err != nil {
		e.logRejected(traceID, req, err)
		return nil, err
	}

	score, err := e.weights.Score(req.Quality)
	if err != nil {
		e.logRejected(traceID, req, err)
		return nil, err
	}

	rec := e.advisor.Recommend(prediction.Value, score.Composite)

	if prediction.Implausible {
		e.logger.Warn().
			Str("trace_id", traceID).
			Float64("value", prediction.Value).
			Msg("predicted emission factor is negative; reporting raw value with implausible flag")
	}

	e.logger.Info().
		Str("trace_id", traceID).
		Str("operation", "Predict").
		Str("gas", req.Gas).
		Str("industry", req.Industry).
		Float64("value", prediction.Value).
		Float64("quality_composite", score.Composite).
		Str("category", string(rec.Category)).
		Bool("low_confidence", rec.LowConfidence).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("prediction complete")

	return &Result{
		TraceID:        traceID,
		Value:          prediction.Value,
		Implausible:    prediction.Implausible,
		Quality:        score,
		Recommendation: rec,
	}, nil
}

func (e *Engine) logRejected(traceID string, req Request, err error) {
	e.logger.Error().
		Str("trace_id", traceID).
		Str("operation", "Predict").
		Str("gas", req.Gas).
		Str("industry", req.Industry).
		Err(err).
		Msg("request rejected")
}
