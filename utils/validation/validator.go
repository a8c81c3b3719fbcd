package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateStruct validates a struct using struct tags.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldError describes the first validation failure in a user-facing way.
type FieldError struct {
	Field   string
	Message string
}

// FirstError maps a validation error to the offending field and a readable
// message, or nil when err is not a validator error.
func FirstError(err error) *FieldError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return nil
	}

	e := validationErrs[0]
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be provided", field)}
	case "min":
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be at least %s characters", field, e.Param())}
	case "max":
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be at most %s characters", field, e.Param())}
	case "gte":
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())}
	case "lte":
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be less than or equal to %s", field, e.Param())}
	default:
		return &FieldError{Field: field, Message: fmt.Sprintf("%s is invalid", field)}
	}
}
