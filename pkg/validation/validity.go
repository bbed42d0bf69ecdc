package validation

import (
	"fmt"
)

// Validity is the outcome of one or more checks: valid, or invalid with a
// non-empty, ordered list of errors. The zero value is valid.
//
// Validity values form a monoid under [Merge] with [Valid] as the identity.
type Validity struct {
	errs []Error
}

// Valid returns the valid result.
func Valid() Validity {
	return Validity{}
}

// Invalid returns a result holding a single error.
func Invalid(reason string, path Path) Validity {
	return Validity{errs: []Error{NewError(reason, path)}}
}

// Invalidf is like Invalid with a formatted reason.
func Invalidf(path Path, format string, args ...any) Validity {
	return Invalid(fmt.Sprintf(format, args...), path)
}

// FromErrors returns an invalid result holding errs, or Valid when errs is
// empty.
func FromErrors(errs ...Error) Validity {
	if len(errs) == 0 {
		return Valid()
	}
	out := make([]Error, len(errs))
	copy(out, errs)
	return Validity{errs: out}
}

// Merge combines two results. Errors of a precede errors of b.
func Merge(a, b Validity) Validity {
	switch {
	case len(b.errs) == 0:
		return a
	case len(a.errs) == 0:
		return b
	}
	out := make([]Error, 0, len(a.errs)+len(b.errs))
	out = append(out, a.errs...)
	out = append(out, b.errs...)
	return Validity{errs: out}
}

// MergeAll folds vs left to right with Merge.
func MergeAll(vs ...Validity) Validity {
	n := 0
	for _, v := range vs {
		n += len(v.errs)
	}
	if n == 0 {
		return Valid()
	}
	out := make([]Error, 0, n)
	for _, v := range vs {
		out = append(out, v.errs...)
	}
	return Validity{errs: out}
}

// IsValid reports whether the result holds no errors.
func (v Validity) IsValid() bool {
	return len(v.errs) == 0
}

// Errors returns a copy of the errors, or nil when valid.
func (v Validity) Errors() []Error {
	if len(v.errs) == 0 {
		return nil
	}
	out := make([]Error, len(v.errs))
	copy(out, v.errs)
	return out
}

// Len returns the number of errors.
func (v Validity) Len() int {
	return len(v.errs)
}

// Equal reports whether both results hold equal errors in the same order.
func (v Validity) Equal(other Validity) bool {
	if len(v.errs) != len(other.errs) {
		return false
	}
	for i := range v.errs {
		if !v.errs[i].Equal(other.errs[i]) {
			return false
		}
	}
	return true
}

// Err returns nil when valid and an *ErrorSet otherwise.
func (v Validity) Err() error {
	if v.IsValid() {
		return nil
	}
	return NewErrorSet(v)
}

// String renders "valid" or the joined error messages.
func (v Validity) String() string {
	if v.IsValid() {
		return "valid"
	}
	return NewErrorSet(v).Error()
}
