// Package advisor maps a predicted emission factor and its composite
// data-quality score to a discrete impact category and advisory text.
package advisor

import (
	"fmt"
	"math"
)

// Category is the discrete environmental impact classification of a
// predicted emission factor.
type Category string

// Impact categories, ordered from least to most severe.
const (
	CategoryLow      Category = "low"
	CategoryModerate Category = "moderate"
	CategoryHigh     Category = "high"
	CategoryCritical Category = "critical"
)

// DefaultConfidenceCutoff is the composite quality score below which advice
// is qualified as low-confidence.
const DefaultConfidenceCutoff = 0.5

// dataGapCutoff is the composite quality score below which an extra
// data-collection action is appended, regardless of category.
const dataGapCutoff = 0.6

// Thresholds are the ordered boundaries on the predicted value
// (kg CO2e per USD) that determine the impact category:
//
//	value <  Moderate            -> low
//	Moderate <= value < High     -> moderate
//	High <= value < Critical     -> high
//	value >= Critical            -> critical
//
// Thresholds are explicit configuration so threshold tuning never touches
// classification logic.
type Thresholds struct {
	Moderate float64 `json:"moderate" yaml:"moderate"`
	High     float64 `json:"high"     yaml:"high"`
	Critical float64 `json:"critical" yaml:"critical"`
}

// DefaultThresholds returns the boundaries the model was calibrated against:
// low < 0.05, moderate < 0.10, high < 0.25, critical above.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Moderate: 0.05,
		High:     0.10,
		Critical: 0.25,
	}
}

// Validate checks that thresholds are finite, positive, and strictly
// ascending.
func (t Thresholds) Validate() error {
	for _, v := range []float64{t.Moderate, t.High, t.Critical} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("impact thresholds must be positive, got %v", v)
		}
	}
	if t.Moderate >= t.High || t.High >= t.Critical {
		return fmt.Errorf("impact thresholds must be strictly ascending: %v < %v < %v",
			t.Moderate, t.High, t.Critical)
	}
	return nil
}

// Recommendation is the advisory output for one prediction.
type Recommendation struct {
	Category Category `json:"category"`

	// LowConfidence is set when the composite quality score fell below the
	// confidence cutoff. The advice then carries a data-quality caveat
	// instead of a definitive recommendation.
	LowConfidence bool `json:"low_confidence"`

	Advice string `json:"advice"`

	// Actions are concrete follow-up suggestions for the category.
	Actions []string `json:"actions"`
}

// Advisor classifies predicted values against a fixed threshold set.
// Safe for concurrent use.
type Advisor struct {
	thresholds       Thresholds
	confidenceCutoff float64
}

// New returns an Advisor over the given thresholds and confidence cutoff.
// Thresholds must already be validated.
func New(thresholds Thresholds, confidenceCutoff float64) *Advisor {
	return &Advisor{
		thresholds:       thresholds,
		confidenceCutoff: confidenceCutoff,
	}
}

// Categorize returns the impact category for a predicted value.
func (a *Advisor) Categorize(value float64) Category {
	switch {
	case value >= a.thresholds.Critical:
		return CategoryCritical
	case value >= a.thresholds.High:
		return CategoryHigh
	case value >= a.thresholds.Moderate:
		return CategoryModerate
	default:
		return CategoryLow
	}
}

// Recommend maps a predicted value and composite quality score to a category
// and advisory text. The advice table is total: every category x confidence
// band combination yields defined, non-empty text.
func (a *Advisor) Recommend(value, qualityScore float64) Recommendation {
	category := a.Categorize(value)
	lowConfidence := qualityScore < a.confidenceCutoff

	advice := adviceTable[category][lowConfidence]

	actions := append([]string(nil), actionTable[category]...)
	if qualityScore < dataGapCutoff {
		actions = append(actions, "Improve data collection methods to raise prediction accuracy")
	}

	return Recommendation{
		Category:      category,
		LowConfidence: lowConfidence,
		Advice:        advice,
		Actions:       actions,
	}
}

// adviceTable maps category and low-confidence band to advisory text.
// Keyed [category][lowConfidence].
var adviceTable = map[Category]map[bool]string{
	CategoryLow: {
		false: "Emission factor is low. Maintain current sustainable practices and continue monitoring.",
		true:  "Low-confidence low impact: the estimate suggests low emissions, but the underlying data quality is weak. Verify inputs before relying on this result.",
	},
	CategoryModerate: {
		false: "Emission factor is moderate. Monitor supply chain performance and optimize where possible.",
		true:  "Low-confidence moderate impact: treat this estimate as indicative only and improve data quality before setting reduction targets.",
	},
	CategoryHigh: {
		false: "Emission factor is high. Consider emission reduction strategies such as cleaner inputs and process changes.",
		true:  "Low-confidence high impact: the estimate points to high emissions, but data quality is too weak for a definitive recommendation. Re-collect quality metrics before acting.",
	},
	CategoryCritical: {
		false: "Emission factor is critical. Immediate mitigation is warranted: prioritize supplier substitution and carbon reduction technologies.",
		true:  "Low-confidence critical impact: the estimate is severe but unreliable. Urgently re-verify source data before committing to mitigation spend.",
	},
}

// actionTable lists concrete follow-ups per category.
var actionTable = map[Category][]string{
	CategoryLow: {
		"Maintain current sustainable practices",
		"Share best practices across the supply chain",
	},
	CategoryModerate: {
		"Optimize supply chain processes",
		"Set emission reduction targets",
		"Monitor performance regularly",
	},
	CategoryHigh: {
		"Consider switching to cleaner alternatives",
		"Explore renewable energy sources",
		"Implement carbon reduction technologies",
	},
	CategoryCritical: {
		"Prioritize substitution of the highest-emission inputs",
		"Engage suppliers on decarbonization commitments",
		"Evaluate carbon capture or offset programs for residual emissions",
	},
}
