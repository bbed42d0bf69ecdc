package validation

// Predicate decides whether a rule applies to a subject.
type Predicate[D, T any] func(Context[D, T]) bool

// Check evaluates a rule against a subject it applies to.
type Check[D, T any] func(Context[D, T]) Validity

// Validator is one rule over subjects of type T within documents of type D.
type Validator[D, T any] struct {
	// Name identifies the rule.
	Name string
	// Predicate gates Check. A nil Predicate always applies.
	Predicate Predicate[D, T]
	// Check computes the result. It is only called when Predicate holds.
	Check Check[D, T]
}

// Option configures a Validator built by New.
type Option[D, T any] func(*Validator[D, T])

// WithPredicate sets the gating predicate.
func WithPredicate[D, T any](p Predicate[D, T]) Option[D, T] {
	return func(v *Validator[D, T]) {
		v.Predicate = p
	}
}

// New creates a Validator. It panics if check is nil.
func New[D, T any](name string, check Check[D, T], opts ...Option[D, T]) Validator[D, T] {
	if check == nil {
		panic("validation: validator " + name + " has no check function")
	}
	v := Validator[D, T]{
		Name:  name,
		Check: check,
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Applies reports whether the validator's predicate holds for c.
func (v Validator[D, T]) Applies(c Context[D, T]) bool {
	if v.Predicate == nil {
		return true
	}
	return v.Predicate(c)
}

// Validate runs the predicate and, when it holds, the check.
func (v Validator[D, T]) Validate(c Context[D, T]) Validity {
	if !v.Applies(c) {
		return Valid()
	}
	return v.Check(c)
}
