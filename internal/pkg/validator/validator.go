// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative validation of structs and single values with standardized
// error formatting.
//
// It supports struct field tags (e.g., `validate:"required,eth_addr"`) and inline
// tags for standalone values, and returns descriptive error messages when rules
// are violated. The validator is initialized on package load and safe to use concurrently.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual field errors.
//
// Example: "'Address': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError transforms a raw validator error into a human-readable multi-error chain
// rooted at ErrValidationFailed. The field name is replaced by name when the error
// comes from a standalone value, which has no field of its own.
func formatError(err error, name string) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		field := validationErr.Field()
		if field == "" {
			field = name
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, validationErr.Value(), validationErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
//
// Example usage:
//
//	type Input struct {
//	    Address string `validate:"required,eth_addr"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err, "")
	}

	return nil
}

// Var validates a single value against an inline tag, reporting failures under name.
//
//	err := validator.Var("address", addr, "required,eth_addr")
func Var(name string, value any, tag string) error {
	if err := validator.Var(value, tag); err != nil {
		return formatError(err, name)
	}

	return nil
}
