// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input structs.
package validator

import (
	domainerrors "jobhud/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance for echo.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with struct-tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag violations are surfaced as the
// shared validation error so the error middleware answers 400 uniformly.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
