// Package validator adapts go-playground/validator to echo.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var registrationTokenPattern = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator with the project's custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("registration_token", func(fl validator.FieldLevel) bool {
		return registrationTokenPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
