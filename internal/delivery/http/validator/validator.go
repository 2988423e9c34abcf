// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator wraps a validator.Validate instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Validation failures surface as 400s
// with the validator's message.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
