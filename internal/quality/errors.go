package quality

import "fmt"

// OutOfRangeError reports a data-quality sub-metric outside [0,1].
// The request is rejected; values are never clamped silently.
type OutOfRangeError struct {
	// Metric names the offending sub-metric ("reliability", "temporal", ...).
	Metric string
	Value  float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("quality metric %s out of range [0,1]: %v", e.Metric, e.Value)
}
