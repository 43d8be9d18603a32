package validate

import "reflect"

// Validator holds a single value and an ordered chain of deferred checks.
// Chain methods return the same instance so calls compose fluently; the
// instance is single-use and not safe for concurrent mutation.
type Validator struct {
	value any
	name  string
	opts  presenceOptions
	chain []check
}

// check is one deferred validation step, evaluated at finalization against
// the assertion built from the then-current value.
type check func(a *assertion) error

// presenceOptions is the mutable presence state shared by Required and
// Fallback. Every presence-family call rewrites allowNull, so the last
// call wins.
type presenceOptions struct {
	required  bool
	decided   bool
	allowNull bool
}

// PresenceOption configures a presence-family call (Required, Fallback).
type PresenceOption func(*presenceOptions)

// AllowNull makes a typed nil (pointer, map, slice, chan or func held in a
// non-nil interface) count as present. It never admits the nil interface
// itself. The flag is shared between Required and Fallback: whichever call
// ran last determines how both treat typed nils.
func AllowNull() PresenceOption {
	return func(o *presenceOptions) {
		o.allowNull = true
	}
}

// Value starts a validation chain for value.
func Value(value any) *Validator {
	return &Validator{value: value}
}

// Named starts a validation chain for value, using name in error messages.
func Named(value any, name string) *Validator {
	return &Validator{value: value, name: name}
}

// Required marks the value as mandatory. The presence check itself runs at
// finalization, before any deferred check.
func (v *Validator) Required(opts ...PresenceOption) *Validator {
	v.applyPresence(opts)
	v.opts.required = true
	return v
}

// NotRequired records that a presence decision was made without imposing
// one. It has no runtime effect beyond that.
func (v *Validator) NotRequired() *Validator {
	v.opts.decided = true
	return v
}

// Fallback substitutes fallback for the value immediately if the value is
// currently missing. The substitution is a synchronous side effect, so it
// is visible to every deferred check regardless of append order.
func (v *Validator) Fallback(fallback any, opts ...PresenceOption) *Validator {
	v.applyPresence(opts)
	if isMissing(v.value, v.opts.allowNull) {
		v.value = fallback
	}
	return v
}

func (v *Validator) applyPresence(opts []PresenceOption) {
	v.opts.decided = true
	v.opts.allowNull = false
	for _, opt := range opts {
		opt(&v.opts)
	}
}

// Get finalizes the chain: it runs the presence check, then each deferred
// check in insertion order, and returns the value once all pass. The first
// failed check short-circuits the rest and is returned as *ValidationError.
// Calling Get again re-runs the same checks against the same value.
func (v *Validator) Get() (any, error) {
	a := v.assert()
	if v.opts.required && isMissing(v.value, v.opts.allowNull) {
		return nil, newMissingError(a)
	}
	for _, chk := range v.chain {
		if err := chk(a); err != nil {
			return nil, err
		}
	}
	return v.value, nil
}

// MustGet is Get for contexts where a failed check is a programmer error.
// It panics with the *ValidationError instead of returning it.
func (v *Validator) MustGet() any {
	value, err := v.Get()
	if err != nil {
		panic(err)
	}
	return value
}

// assert snapshots the subject clause and the stringified current value.
// It must run after any fallback substitution and before the first deferred
// check, so every error message reflects the finalized value.
func (v *Validator) assert() *assertion {
	return &assertion{
		subject:    subjectClause(v.name),
		actual:     v.value,
		actualText: stringify(v.value),
	}
}

// assertion is the per-finalization snapshot deferred checks report against.
type assertion struct {
	subject    string
	actual     any
	actualText string
}

// isMissing reports whether value counts as absent: the nil interface is
// always missing, a typed nil is missing unless allowNull is set.
func isMissing(value any, allowNull bool) bool {
	if value == nil {
		return true
	}
	return !allowNull && isNull(value)
}

func isNull(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
