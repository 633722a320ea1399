// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator reporting fields by their json name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate returns ErrValidationFailed with one message per invalid field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		msgs = append(msgs, fieldErr.Field()+": "+fieldMessage(fieldErr))
	}
	sort.Strings(msgs)

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, "; "))
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("maximum is %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "datetime":
		return "expected format " + err.Param()
	case "latitude", "longitude":
		return "invalid coordinate"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(err.Param(), " ", ", ")
	default:
		return "invalid value"
	}
}
