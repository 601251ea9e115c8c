package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagRunID validates identifiers that end up in storage keys.
const TagRunID = "runid"

var runIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// New creates a new validator instance with the custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagRunID, func(fl validator.FieldLevel) bool {
		return runIDPattern.MatchString(fl.Field().String())
	})
	return v
}
