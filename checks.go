package validate

import "github.com/google/go-cmp/cmp"

// Equal defers a check that the value equals expected under the given
// comparison options. Nothing is evaluated until Get runs.
func (v *Validator) Equal(expected any, opts ...cmp.Option) *Validator {
	v.chain = append(v.chain, func(a *assertion) error {
		if equal(a.actual, expected, opts) {
			return nil
		}
		return newMismatchError(a, expected)
	})
	return v
}

// NotEqual defers a check that the value differs from forbidden.
func (v *Validator) NotEqual(forbidden any, opts ...cmp.Option) *Validator {
	v.chain = append(v.chain, func(a *assertion) error {
		if !equal(a.actual, forbidden, opts) {
			return nil
		}
		return newForbiddenError(a, forbidden)
	})
	return v
}

// OneOf defers a check that the value equals at least one of allowed.
func (v *Validator) OneOf(allowed []any, opts ...cmp.Option) *Validator {
	v.chain = append(v.chain, func(a *assertion) error {
		for _, candidate := range allowed {
			if equal(a.actual, candidate, opts) {
				return nil
			}
		}
		return newNoneMatchedError(a, allowed)
	})
	return v
}

// NoneOf defers a check that the value equals none of forbidden.
func (v *Validator) NoneOf(forbidden []any, opts ...cmp.Option) *Validator {
	v.chain = append(v.chain, func(a *assertion) error {
		for i, candidate := range forbidden {
			if equal(a.actual, candidate, opts) {
				return newForbiddenSetError(a, forbidden, i)
			}
		}
		return nil
	})
	return v
}

// Check defers an arbitrary predicate over the finalized value. The
// returned error is surfaced by Get as-is, so custom rules can carry their
// own error types alongside the built-in checks.
func (v *Validator) Check(fn func(value any) error) *Validator {
	v.chain = append(v.chain, func(a *assertion) error {
		return fn(a.actual)
	})
	return v
}
