// Package validation provides composable field validators for request
// payloads. Rule sets are declared statically next to the handler that uses
// them; each validator returns an error message or "" when the value passes.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an error
// message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty and does not exceed maxLen
// characters. Uses rune count for proper Unicode support.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// RequiredRange validates that a field is not empty and is between minLen and
// maxLen characters. Length is in bytes, which is what matters for password
// hashing limits.
func RequiredRange(fieldName string, minLen, maxLen int) Validator {
	return func(v string) string {
		if v == "" {
			return fieldName + " is required."
		}
		if len(v) < minLen || len(v) > maxLen {
			return fmt.Sprintf("%s must be between %d and %d characters.", fieldName, minLen, maxLen)
		}
		return ""
	}
}

// Email validates that a field is a plain RFC 5322 address without a display
// name.
func Email(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		addr, err := mail.ParseAddress(v)
		if err != nil || !strings.EqualFold(addr.Address, v) {
			return fieldName + " is not a valid email address."
		}
		return ""
	}
}

// Optional validates that an optional field does not exceed maxLen characters
// if provided.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// FieldValidator accumulates per-field validation errors.
type FieldValidator struct {
	errors map[string][]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string][]string)}
}

// Validate runs the validators against the value, recording the first failure
// for the field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = append(fv.errors[field], msg)
			break
		}
	}
	return fv
}

// Valid reports whether no field failed.
func (fv *FieldValidator) Valid() bool { return len(fv.errors) == 0 }

// Errors returns the accumulated field errors, nil when everything passed.
func (fv *FieldValidator) Errors() map[string][]string {
	if len(fv.errors) == 0 {
		return nil
	}
	return fv.errors
}
