package form

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/casava/admin-console/src/internal/log"
)

var (
	validate *validator.Validate

	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)
)

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("phone", validatePhone); err != nil {
		panic(err)
	}
}

// Validate checks every field against its rules and replaces the field
// errors with the result. It reports whether the form is valid.
func Validate(form *Form) bool {
	valid := true
	for _, field := range form.Fields {
		field.Errors = fieldMessages(field)
		if len(field.Errors) > 0 {
			valid = false
		}
	}
	return valid
}

func fieldMessages(field *Field) []string {
	if field.Rules == "" {
		return nil
	}

	value := field.value()
	if file, ok := value.(*File); ok {
		// Files only support presence checks.
		if file == nil || len(file.Content) == 0 {
			value = ""
		} else {
			value = file.Name
		}
	}
	if value == nil {
		value = ""
	}

	err := validate.Var(value, field.Rules)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		log.Warnf("Invalid rules %q for field %s: %v", field.Rules, field.Name, err)
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, getValidationMessage(fe))
	}
	return messages
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "phone", "e164":
		return "must be a valid phone number"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be <= %s", e.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "numeric", "number":
		return "must be a number"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return fmt.Sprintf("must be a date in the format %s", e.Param())
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}
