// Package model applies the pre-fit standardization transform and linear
// regression coefficients to an encoded feature vector.
package model

// FeatureVector is an ordered numeric encoding of a prediction request.
// Slot order is fixed at training time and must match the scaler and
// coefficient schema exactly.
type FeatureVector []float64

// ScalerParameters holds the per-feature standardization statistics fitted
// during training. Mean and Scale are index-aligned with the feature vector.
type ScalerParameters struct {
	Mean  []float64
	Scale []float64
}

// ModelParameters holds the fitted linear regression coefficients.
// Coefficients are index-aligned with the normalized feature vector.
type ModelParameters struct {
	Coefficients []float64
	Intercept    float64
}

// Prediction is the raw regression output for one request.
type Prediction struct {
	// Value is the predicted emission factor in kg CO2e per USD.
	// It is the unclamped linear output and may be negative.
	Value float64

	// Implausible is set when Value is negative. A physical emission factor
	// cannot be negative, so callers should flag rather than trust the value.
	// This is a warning, not an error.
	Implausible bool
}
