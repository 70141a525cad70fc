// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"tripplanner/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed validation rule
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate validates a struct according to its `validate` tags.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// FieldErrors flattens validation failures into response details. It
// returns nil when err holds no validation failures.
func FieldErrors(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		// Drop the root struct name: "PlanItineraryRequest.pois[0].id" -> "pois[0].id"
		field := fe.Namespace()
		if _, rest, found := strings.Cut(field, "."); found {
			field = rest
		}
		out = append(out, FieldError{
			Field: field,
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}
