package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// marker every recognized maps-embed URL must contain
const embedMarker = "/maps/embed"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// embedlink: field must look like a maps embed URL
	v.RegisterValidation("embedlink", func(fl validator.FieldLevel) bool {
		return strings.Contains(fl.Field().String(), embedMarker)
	})

	// password: account password policy (length, special char, digit)
	v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return ValidatePasswordPolicy(fl.Field().String())
	})

	// phone: digits only. The numeric tag also admits signs and decimal
	// points, which are not phone numbers.
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return value != ""
	})

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid UUID"
	case "numeric":
		return "Must be a number"
	case "phone":
		return "Must contain digits only"
	case "embedlink":
		return "Must be a maps embed link"
	case "password":
		return "Password must be at least 8 characters with a special character and number"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	var msgs []string
	for field, msg := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
