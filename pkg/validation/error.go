package validation

import (
	"strings"
)

// Error is a single validation failure located within a document.
type Error struct {
	// Reason is a human-readable description of the defect.
	Reason string `json:"reason"`
	// Path locates the offending node.
	Path Path `json:"path"`
}

// NewError creates an Error. The path is copied.
func NewError(reason string, path Path) Error {
	return Error{Reason: reason, Path: path.Append()}
}

// Error renders "<reason> at path: <path>".
func (e Error) Error() string {
	return e.Reason + " at path: " + e.Path.String()
}

// Equal reports whether both errors have the same reason and path.
func (e Error) Equal(other Error) bool {
	return e.Reason == other.Reason && e.Path.Equal(other.Path)
}

// ErrorSet reports every error of an invalid Validity as one error value.
type ErrorSet struct {
	errs []Error
}

// NewErrorSet converts an invalid Validity into an ErrorSet.
// It panics when v is valid; use [Validity.Err] when v may be valid.
func NewErrorSet(v Validity) *ErrorSet {
	if v.IsValid() {
		panic("validation: NewErrorSet called with a valid Validity")
	}
	return &ErrorSet{errs: v.Errors()}
}

// Errors returns the errors in the order they were found.
func (s *ErrorSet) Errors() []Error {
	out := make([]Error, len(s.errs))
	copy(out, s.errs)
	return out
}

// Len returns the number of errors in the set.
func (s *ErrorSet) Len() int { return len(s.errs) }

// Validity converts the set back to an invalid Validity.
func (s *ErrorSet) Validity() Validity {
	return FromErrors(s.errs...)
}

// Error joins the member errors with "; ".
func (s *ErrorSet) Error() string {
	parts := make([]string, len(s.errs))
	for i, e := range s.errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes each member so errors.As can reach an individual Error.
func (s *ErrorSet) Unwrap() []error {
	out := make([]error, len(s.errs))
	for i, e := range s.errs {
		out[i] = e
	}
	return out
}
