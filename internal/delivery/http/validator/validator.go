// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "inkwell/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request DTOs.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator. Field names in errors use the json tag.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate returns ErrValidationFailed carrying one "field: rule" entry per failure.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate request")
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s: must not be empty", fieldErr.Field())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "notblank":
		return fmt.Sprintf("%s: must not be blank", fieldErr.Field())
	default:
		return fmt.Sprintf("%s: failed %s", fieldErr.Field(), fieldErr.Tag())
	}
}
