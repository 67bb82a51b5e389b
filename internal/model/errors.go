package model

import "fmt"

// DimensionMismatchError reports a length skew between a feature vector and
// the loaded parameter schema. It indicates misconfigured deployment
// artifacts (stale scaler or model file), not bad user input, and is not
// recoverable at the request boundary.
type DimensionMismatchError struct {
	// Stage names the parameter set that disagreed ("scaler", "model").
	Stage string
	Want  int
	Got   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s dimension mismatch: expected %d features, got %d", e.Stage, e.Want, e.Got)
}
