package features

import "fmt"

// UnknownCategoryError reports a categorical input that is not part of the
// trained vocabulary. The request is rejected rather than silently mapped to
// a default category, which would corrupt the regression input.
type UnknownCategoryError struct {
	// Field is the request field holding the bad value ("gas", "unit",
	// "industry").
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category %q", e.Field, e.Value)
}
