package engine

import (
	"math"

	"github.com/ecopredict/ecopredict/internal/features"
	"github.com/ecopredict/ecopredict/internal/quality"
)

// constError is an immutable sentinel error type.
type constError string

func (e constError) Error() string { return string(e) }

// Request-boundary validation errors. Comparable with errors.Is().
var (
	// ErrMissingGas indicates an empty gas type.
	ErrMissingGas = constError("gas type is required")

	// ErrMissingUnit indicates an empty measurement unit.
	ErrMissingUnit = constError("unit is required")

	// ErrMissingIndustry indicates an empty industry/commodity identifier.
	ErrMissingIndustry = constError("industry is required")

	// ErrNegativeBaseFactor indicates a negative base emission factor.
	ErrNegativeBaseFactor = constError("base emission factor must be non-negative")

	// ErrNegativeMarginFactor indicates a negative safety margin.
	ErrNegativeMarginFactor = constError("margin factor must be non-negative")
)

// Request is one prediction request as supplied by the presentation layer.
// All fields are required and validated at the boundary before encoding;
// invalid values are rejected, never clamped.
type Request struct {
	// Gas is the greenhouse gas type: CO2, CH4, N2O, or other.
	Gas string `json:"gas"`

	// Unit is the measurement unit: kg, ton, CO2e, or other.
	Unit string `json:"unit"`

	// Industry is the industry/commodity identifier. It must exist in the
	// trained category vocabulary.
	Industry string `json:"industry"`

	// BaseFactor is the supply chain emission factor without margins,
	// in kg CO2e per USD. Must be >= 0.
	BaseFactor float64 `json:"base_factor"`

	// MarginFactor is the safety margin on the emission factor. Must be >= 0.
	MarginFactor float64 `json:"margin_factor"`

	// Quality holds the five data-quality sub-metrics, each in [0,1].
	Quality quality.Metrics `json:"quality"`
}

// validate checks field presence and numeric domains. Category membership is
// checked later by the encoder against the trained vocabulary.
func (r Request) validate() error {
	if r.Gas == "" {
		return ErrMissingGas
	}
	if r.Unit == "" {
		return ErrMissingUnit
	}
	if r.Industry == "" {
		return ErrMissingIndustry
	}
	if math.IsNaN(r.BaseFactor) || r.BaseFactor < 0 {
		return ErrNegativeBaseFactor
	}
	if math.IsNaN(r.MarginFactor) || r.MarginFactor < 0 {
		return ErrNegativeMarginFactor
	}
	return r.Quality.Validate()
}

// observation converts the request into the encoder's input form.
func (r Request) observation() features.Observation {
	return features.Observation{
		Gas:           r.Gas,
		Unit:          r.Unit,
		Industry:      r.Industry,
		BaseFactor:    r.BaseFactor,
		MarginFactor:  r.MarginFactor,
		Reliability:   r.Quality.Reliability,
		Temporal:      r.Quality.Temporal,
		Geographic:    r.Quality.Geographic,
		Technological: r.Quality.Technological,
		Collection:    r.Quality.Collection,
	}
}
