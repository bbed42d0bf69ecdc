// Package validation is the rule engine at the heart of speclint.
//
// Rules are written once per subject type as a [Validator], erased into an
// [Attempt] so that validators over many different node types can live in
// one slice, and then run against every node of a decoded document. Results
// are [Validity] values that merge without short-circuiting, so a single
// pass reports every independent defect.
//
// # Core Concepts
//
//   - [Validity]: valid, or invalid with an ordered list of [Error] values.
//   - [Error]: a reason and the [Path] of the offending node.
//   - [ErrorSet]: an invalid Validity surfaced as a single Go error.
//   - [Context]: the document, the subject node and the subject's path.
//   - [Validator]: a named predicate/check pair over one subject type.
//   - [Attempt]: a type-erased Validator that skips nodes of other types.
//
// # Basic Usage
//
//	titleRule := validation.New("info-title",
//		func(c validation.Context[*openapi.Document, openapi.Info]) validation.Validity {
//			if c.Subject.Title == "" {
//				return c.Invalid("title is required")
//			}
//			return validation.Valid()
//		})
//
//	attempts := []validation.Attempt[*openapi.Document]{
//		validation.Erase(titleRule),
//	}
//
//	var result validation.Validity
//	for _, n := range nodes {
//		for _, a := range attempts {
//			result = validation.Merge(result, a.Run(doc, n.Value, n.Path))
//		}
//	}
//	if err := result.Err(); err != nil {
//		return err
//	}
//
// # Subject Types
//
// An Attempt runs its validator only when the node's dynamic type is exactly
// the validator's subject type. A Validator over Info ignores *Info nodes and
// vice versa. No value has an interface as its dynamic type, so [Erase]
// rejects a Validator whose subject is an interface type.
package validation
