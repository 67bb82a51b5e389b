package engine

import (
	"github.com/ecopredict/ecopredict/internal/advisor"
	"github.com/ecopredict/ecopredict/internal/quality"
)

// Result is the outcome of one prediction request. It is created per request
// and discarded after the response is rendered; nothing is carried across
// requests.
type Result struct {
	// TraceID correlates this result with its log entries.
	TraceID string `json:"trace_id"`

	// Value is the predicted emission factor in kg CO2e per USD,
	// reported raw (not clamped).
	Value float64 `json:"value"`

	// Implausible is set when the raw linear output is negative.
	Implausible bool `json:"implausible,omitempty"`

	// Quality is the composite data-quality score with its sub-scores.
	Quality quality.Score `json:"quality"`

	// Recommendation is the impact category and advisory text.
	Recommendation advisor.Recommendation `json:"recommendation"`
}
