package validate

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equal implements the equality policy behind every equality-family check.
// Without options it is go-cmp's strict deep equality; callers loosen or
// reshape it by passing cmp.Option values through the chain methods.
func equal(a, b any, opts []cmp.Option) bool {
	return cmp.Equal(a, b, opts...)
}

// Loosely selects a tolerant structural comparison: nil and empty
// collections compare equal, and NaN compares equal to itself.
//
//	validate.Value(items).Equal([]string{}, validate.Loosely())
func Loosely() cmp.Option {
	return cmp.Options{
		cmpopts.EquateEmpty(),
		cmpopts.EquateNaNs(),
	}
}
