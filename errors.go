package validate

import "errors"

// Kind distinguishes the failure shapes a chain can produce. All of them
// surface as *ValidationError; the composed Message is the primary payload
// and Kind exists for programmatic inspection.
type Kind int

const (
	// KindMissing is a required value that is still missing at finalization.
	KindMissing Kind = iota + 1

	// KindMismatch is a value that doesn't equal the single expected value.
	KindMismatch

	// KindForbidden is a value that equals a single forbidden value.
	KindForbidden

	// KindNoneMatched is a value that matches none of an expected set.
	KindNoneMatched

	// KindForbiddenSet is a value that matches one of a forbidden set.
	KindForbiddenSet
)

// ValidationError is the single error type returned by Get. Message carries
// the fully composed text (subject clause, verdict, diff blocks); the other
// fields expose the offending values for callers that want to inspect them.
type ValidationError struct {
	Kind     Kind
	Subject  string
	Actual   any
	Expected any
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// ExtractValidationError unwraps the *ValidationError from err, or returns
// nil if there is none.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
