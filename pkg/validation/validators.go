package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters (including accented ones), spaces, and common name
	// punctuation: . ' -
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// Lenient phone shape: optional +, then digits with optional spaces,
	// dots or dashes. Students paste numbers in every imaginable format.
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 .-]{2,19}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidName validates that a string contains only valid name characters.
// Rejects digits and most special symbols.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
