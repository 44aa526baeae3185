package mockapi

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", humanize(e.Field()))
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", humanize(e.Field()))
	case "e164":
		return fmt.Sprintf("The %s must be a valid phone number.", humanize(e.Field()))
	case "datetime":
		return fmt.Sprintf("The %s does not match the format %s.", humanize(e.Field()), e.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s.", humanize(e.Field()), e.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s.", humanize(e.Field()), e.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", humanize(e.Field()))
	}
}

func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// fieldErrors validates v and groups the messages by field name. It returns
// nil when v is valid.
func fieldErrors(v any) map[string][]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return map[string][]string{"_": {err.Error()}}
	}

	out := make(map[string][]string)
	for _, e := range validatorErrs {
		out[e.Field()] = append(out[e.Field()], getValidationMessage(e))
	}
	return out
}
