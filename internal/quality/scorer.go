// Package quality combines the five data-quality sub-metrics of an emission
// factor into a single composite score.
package quality

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds floating point drift when checking that weights
// sum to 1.
const weightSumTolerance = 1e-9

// Metrics holds the five data-quality sub-metrics of a prediction request.
// Each value must be in [0,1].
type Metrics struct {
	Reliability   float64 `json:"reliability"`
	Temporal      float64 `json:"temporal"`
	Geographic    float64 `json:"geographic"`
	Technological float64 `json:"technological"`
	Collection    float64 `json:"collection"`
}

// Validate checks that every sub-metric is within [0,1].
// Returns an *OutOfRangeError naming the first offending metric.
func (m Metrics) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"reliability", m.Reliability},
		{"temporal", m.Temporal},
		{"geographic", m.Geographic},
		{"technological", m.Technological},
		{"collection", m.Collection},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || c.value < 0 || c.value > 1 {
			return &OutOfRangeError{Metric: c.name, Value: c.value}
		}
	}
	return nil
}

// Weights is the fixed weighting used to fold the five sub-metrics into the
// composite score. Weights must be non-negative and sum to 1. An inconsistent
// weighting breaks comparability across runs, so the weighting in force is
// explicit configuration, not code.
type Weights struct {
	Reliability   float64 `json:"reliability"   yaml:"reliability"`
	Temporal      float64 `json:"temporal"      yaml:"temporal"`
	Geographic    float64 `json:"geographic"    yaml:"geographic"`
	Technological float64 `json:"technological" yaml:"technological"`
	Collection    float64 `json:"collection"    yaml:"collection"`
}

// DefaultWeights returns the reference policy: equal weighting, 0.2 per
// sub-metric. This matches the plain mean the model's training pipeline used.
func DefaultWeights() Weights {
	return Weights{
		Reliability:   0.2,
		Temporal:      0.2,
		Geographic:    0.2,
		Technological: 0.2,
		Collection:    0.2,
	}
}

// Validate checks that all weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Reliability, w.Temporal, w.Geographic, w.Technological, w.Collection} {
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("quality weights must be non-negative, got %v", v)
		}
	}
	sum := w.Reliability + w.Temporal + w.Geographic + w.Technological + w.Collection
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("quality weights must sum to 1, got %v", sum)
	}
	return nil
}

// Score is the composite data-quality result. The five contributing
// sub-scores are retained for display; nothing is persisted or aggregated
// across requests.
type Score struct {
	Composite float64 `json:"composite"`
	Metrics   Metrics `json:"metrics"`
}

// Score folds the five sub-metrics into the composite using the receiver's
// weighting. Each call is independent and side-effect-free; for valid inputs
// and valid weights the composite is always in [0,1].
//
// Returns an *OutOfRangeError if any sub-metric is outside [0,1].
func (w Weights) Score(m Metrics) (Score, error) {
	if err := m.Validate(); err != nil {
		return Score{}, err
	}

	composite := w.Reliability*m.Reliability +
		w.Temporal*m.Temporal +
		w.Geographic*m.Geographic +
		w.Technological*m.Technological +
		w.Collection*m.Collection

	return Score{Composite: composite, Metrics: m}, nil
}
