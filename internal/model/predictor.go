package model

// Predict applies the fitted linear model to a normalized feature vector:
//
//	value = intercept + Σ coefficients[i] × vec[i]
//
// The output is deterministic given fixed parameters and is reported raw:
// negative values are not clamped, they set Prediction.Implausible so that
// downstream presentation can flag them.
//
// Returns a *DimensionMismatchError if the vector length differs from the
// coefficient length.
func Predict(vec FeatureVector, params ModelParameters) (Prediction, error) {
	if len(vec) != len(params.Coefficients) {
		return Prediction{}, &DimensionMismatchError{Stage: "model", Want: len(params.Coefficients), Got: len(vec)}
	}

	value := params.Intercept
	for i, coef := range params.Coefficients {
		value += coef * vec[i]
	}

	return Prediction{
		Value:       value,
		Implausible: value < 0,
	}, nil
}
