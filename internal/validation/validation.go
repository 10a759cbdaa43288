package validation

import (
	"fmt"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
)

// ValidationError aggregates every field violation of one request so the
// caller sees all problems in a single round trip.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation failed: [%s]", strings.Join(e.Violations, ", "))
}

var validate *v10.Validate

func init() {
	validate = v10.New()

	_ = validate.RegisterValidation("notblank", func(fl v10.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// report violations under the json field name, not the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
}

// Validate runs struct validation and collects every violated field into one
// aggregated ValidationError.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	ve, ok := err.(v10.ValidationErrors)
	if !ok {
		return &ValidationError{Violations: []string{err.Error()}}
	}

	violations := make([]string, 0, len(ve))
	for _, f := range ve {
		violations = append(violations, messageFor(f))
	}
	return &ValidationError{Violations: violations}
}

func messageFor(f v10.FieldError) string {
	switch f.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s must not be blank", f.Field())
	default:
		return fmt.Sprintf("%s is invalid", f.Field())
	}
}
