// Package validator wraps go-playground/validator with the struct tags used
// across the service (configuration and inbound webhook payloads) and turns
// field failures into a single joined error rooted at ErrValidationFailed.
//
// Besides the stock tags it registers:
//
//   - txhash:  a 0x-prefixed 32 byte hex string
//   - network: a lowercase network slug such as "polygon-mainnet"
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

var (
	txHashPattern  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	networkPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// errStringFormat describes a single field failure.
//
// Example: "'TransactionHash': value '0x' does not meet the requirements for the 'txhash' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	mustRegister("txhash", func(fl gvalidator.FieldLevel) bool {
		return txHashPattern.MatchString(fl.Field().String())
	})
	mustRegister("network", func(fl gvalidator.FieldLevel) bool {
		return networkPattern.MatchString(fl.Field().String())
	})
}

func mustRegister(tag string, fn gvalidator.Func) {
	if err := validator.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: register %q: %v", tag, err))
	}
}

// formatError converts validator.ValidationErrors into ErrValidationFailed
// joined with one message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	if err := validator.Validate(payload); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the request
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
