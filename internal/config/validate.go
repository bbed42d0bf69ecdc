package config

import (
	"github.com/thoreinstein/speclint/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidFormat indicates an unrecognized output format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("workers must be >= 1")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
// Rule names in DisabledRules are checked by the rules catalog, not here.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, &FieldError{
			Field: "format",
			Value: cfg.Format,
			Err:   ErrInvalidFormat,
		})
	}

	if cfg.Workers < 1 {
		errs = append(errs, ErrInvalidWorkers)
	}

	return errs
}

// FieldError represents an invalid value for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
