// Package validator wraps go-playground/validator with a process-wide
// instance and uniform error formatting.
//
// Structs declare their rules with `validate:"..."` tags. Failures are
// returned as a joined error whose first member is ErrValidationFailed,
// followed by one message per violated rule.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of every validation failure chain.
var ErrValidationFailed = errors.New("validation failed")

// validator is the shared instance, created on package load.
var validator *gvalidator.Validate

// errStringFormat describes one violated rule.
//
// Example: "'PolicyID': value 'zz' does not meet the requirements for the 'hexadecimal' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError turns validator errors into a joined, human-readable chain
// rooted at ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its struct tags.
//
//	if err := validator.Validate(req); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the request
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against a tag expression such as "required,hexadecimal".
func Var(field any, tag string) error {
	if err := validator.Var(field, tag); err != nil {
		return formatError(err)
	}

	return nil
}
