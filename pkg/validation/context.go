package validation

import "fmt"

// Context is what a rule sees: the whole document, the node being checked
// and where that node lives. Rules must not mutate Document or Subject.
type Context[D, T any] struct {
	Document D
	Subject  T
	Path     Path
}

// Invalid reports a failure at the subject's own path.
func (c Context[D, T]) Invalid(reason string) Validity {
	return Invalid(reason, c.Path)
}

// Invalidf is like Invalid with a formatted reason.
func (c Context[D, T]) Invalidf(format string, args ...any) Validity {
	return Invalid(fmt.Sprintf(format, args...), c.Path)
}

// InvalidAt reports a failure at a path below the subject.
func (c Context[D, T]) InvalidAt(reason string, segs ...Segment) Validity {
	return Invalid(reason, c.Path.Append(segs...))
}
