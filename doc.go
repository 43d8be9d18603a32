// Package validate provides a fluent, single-value validation chain with
// deferred checks and descriptive, diff-based error messages.
//
// A chain is built around one value: presence-family calls (Required,
// NotRequired, Fallback) mutate the chain's options immediately, while
// equality-family calls (Equal, NotEqual, OneOf, NoneOf) record deferred
// checks. Nothing is evaluated until the terminal Get call, which runs the
// presence check and then every deferred check in insertion order, stopping
// at the first failure.
//
// # Architecture
//
// Each source file owns one concern: validator.go holds the engine and
// presence state machine, checks.go the equality-family chain methods,
// compare.go the equality policy (github.com/google/go-cmp/cmp), stringify.go
// the deterministic value dumper (github.com/davecgh/go-spew/spew), diff.go
// the line-oriented diff (github.com/pmezard/go-difflib/difflib), and
// format.go the error-message composer. There is no global state; a
// Validator is single-use and not safe for concurrent mutation.
//
// # Usage
//
//	port, err := validate.Named(cfg.Port, "port").
//		Fallback(8080).
//		Required().
//		OneOf([]any{8080, 8443}).
//		Get()
//	if err != nil {
//		// err.Error() names the value, the verdict, and a line diff
//		// of actual (+) vs expected (-).
//	}
//
// Fallback substitutes its argument synchronously when the value is missing
// (a nil interface, or a typed nil without AllowNull), so the substitution
// is visible to every check regardless of the order calls were appended.
//
// Equality-family methods accept go-cmp options, which select the comparison
// policy; without options the comparison is go-cmp's strict deep equality,
// and Loosely() bundles a tolerant structural policy.
//
// # Error Handling
//
// Every failure is a *ValidationError carrying the composed message plus
// the Kind, Subject and offending values for programmatic inspection. Use
// errors.As, or the IsValidationError and ExtractValidationError helpers,
// to detect validation failures across wrapping. Checks after the first
// failure never run, so a single error is reported per Get call.
package validate
