package config

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/casava/admin-console/src/internal/session"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	sections := []struct {
		name  string
		value any
		isNil bool
	}{
		{"services", c.Services, c.Services == nil},
		{"auth", c.Auth, c.Auth == nil},
		{"http", c.HTTP, c.HTTP == nil},
	}

	for _, s := range sections {
		if s.isNil {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: s.name,
				Message:   "configuration must contain '" + s.name + "' section",
			})
			continue
		}
		if err := validate.Struct(s.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, s.name)...)
		}
	}

	if c.Auth != nil && c.Auth.SessionToken != "" {
		validationErrors = append(validationErrors, validateSessionToken(c.Auth.SessionToken)...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// validateSessionToken accepts opaque tokens and rejects JWTs that are
// malformed.
func validateSessionToken(token string) ValidationErrors {
	if !session.LooksLikeJWT(token) {
		return nil
	}
	if _, err := session.Inspect(token); err != nil {
		return ValidationErrors{{
			FieldPath: "auth.session_token",
			Message:   "must be a well-formed JWT: " + err.Error(),
		}}
	}
	return nil
}

func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldPath = fieldPrefix + "." + e.Field()
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
