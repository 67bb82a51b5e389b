package model

import "math"

// minScale is the threshold below which a fitted scale is treated as a
// constant training feature. Dividing by it would produce Inf/NaN, so the
// normalized value is forced to 0 instead.
const minScale = 1e-12

// Normalize applies the pre-fit standardization transform to vec:
//
//	out[i] = (vec[i] - params.Mean[i]) / params.Scale[i]
//
// The transform is pure and deterministic; vec is not modified.
//
// Returns a *DimensionMismatchError if the vector length differs from the
// fitted parameter length. Features whose fitted scale is ~0 (constant in the
// training data) normalize to 0 rather than propagating Inf or NaN.
func Normalize(vec FeatureVector, params ScalerParameters) (FeatureVector, error) {
	if len(params.Mean) != len(params.Scale) {
		return nil, &DimensionMismatchError{Stage: "scaler", Want: len(params.Mean), Got: len(params.Scale)}
	}
	if len(vec) != len(params.Mean) {
		return nil, &DimensionMismatchError{Stage: "scaler", Want: len(params.Mean), Got: len(vec)}
	}

	out := make(FeatureVector, len(vec))
	for i, v := range vec {
		scale := params.Scale[i]
		if math.Abs(scale) < minScale {
			out[i] = 0
			continue
		}
		out[i] = (v - params.Mean[i]) / scale
	}
	return out, nil
}
