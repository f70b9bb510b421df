// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	domainerrors "medmatch/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates an Echo-compatible validator backed by go-playground/validator.
func New() *echoValidator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as a 400
// VALIDATION_FAILED AppError with the field errors as details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
