package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps requester-profile field names to the labels the form
// shows, so validation messages match what the student actually sees.
var FieldLabels = map[string]string{
	"Name":          "Nombre",
	"Surname":       "Apellido",
	"YearInProgram": "Año en la carrera",
	"Program":       "Carrera",
	"Email":         "Correo",
	"Phone":         "Celular",
	"Sex":           "Sexo",
	"LinkedinURL":   "Linkedin",
}

// FormatValidationErrors converts validator.ValidationErrors to
// user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: es obligatorio", label)

	case "email":
		return fmt.Sprintf("%s: formato de correo inválido", label)

	case "valid_name":
		return fmt.Sprintf("%s: sólo se permiten letras, espacios y puntuación común (. ' -)", label)

	case "valid_phone":
		return fmt.Sprintf("%s: formato de celular inválido", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: validación fallida (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
