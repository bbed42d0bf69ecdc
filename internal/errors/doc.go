// Package errors is speclint's single errors import.
//
// It re-exports the constructors and inspectors of
// github.com/cockroachdb/errors (New, Wrap, Is, As, Mark, ...), declares the
// sentinel errors shared across packages, and defines [ExitError], which
// commands return to choose the process exit code:
//
//	ExitSuccess (0)  command completed
//	ExitUser    (1)  bad input: an invalid document, flag or config file
//	ExitSystem  (2)  the environment failed: I/O, permissions
//
// Rule violations are not errors here. The engine returns them as a
// validation.Validity and the validate command turns a failed result into
// ErrValidationFailed at the very end:
//
//	err := errors.Wrapf(errors.ErrValidationFailed, "%d of %d document(s)", failed, total)
//	return errors.NewExitError(err, errors.ExitUser)
//
// main recovers the code with [ExitCode] and prints any Suggestion.
package errors
