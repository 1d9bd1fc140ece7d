package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts violations into a
// ValidationError the error middleware maps to 400, field by field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make([]FieldError, 0, len(violations))
	for _, v := range violations {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(v.Field()),
			Message: describeViolation(v),
		})
	}
	return &ValidationError{Fields: fieldErrors}
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "request validation failed"
}

func describeViolation(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", v.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", v.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", v.Param())
	default:
		return fmt.Sprintf("failed %s validation", v.Tag())
	}
}
