package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request structs.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate validates a struct against its validate tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var _ echo.Validator = (*CustomValidator)(nil)
