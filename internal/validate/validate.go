// Package validate implements the two validation passes for the diploma
// builder: advisory per-field checks that annotate the form while the user
// types, and the pre-submission gate that blocks save/download/purchase
// actions until every required field is present.
package validate

import (
	"fmt"
	"strings"

	"diplomabuilder/internal/wizard"
)

// requiredFields is the fixed pre-submission set, in declared order. The
// student name is always optional; the preview substitutes a placeholder.
var requiredFields = []string{
	wizard.FieldSchoolName,
	wizard.FieldGraduationDate,
	wizard.FieldCity,
	wizard.FieldState,
}

// Status classifies the outcome of an inline field check.
type Status int

const (
	// Neutral marks an optional field that is empty: no error, no checkmark.
	Neutral Status = iota
	// Valid marks a field that passes its rules.
	Valid
	// Invalid marks a field that fails a rule; Message carries the reason.
	Invalid
)

// FieldResult is the advisory outcome of one inline check.
type FieldResult struct {
	Field   string
	Status  Status
	Message string
}

// GateResult is the outcome of the pre-submission gate.
type GateResult struct {
	OK            bool
	MissingFields []string
	Message       string
}

// Required reports whether the named field belongs to the pre-submission set.
func Required(field string) bool {
	for _, name := range requiredFields {
		if name == field {
			return true
		}
	}
	return false
}

// CheckField runs the inline rules for a single field. It never blocks
// editing; callers use the result purely for UI feedback.
func CheckField(field, value string) FieldResult {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if Required(field) {
			return FieldResult{
				Field:   field,
				Status:  Invalid,
				Message: fmt.Sprintf("The %s field is required.", DisplayName(field)),
			}
		}
		return FieldResult{Field: field, Status: Neutral}
	}

	switch field {
	case wizard.FieldStudentName:
		if len(trimmed) < 2 {
			return FieldResult{
				Field:   field,
				Status:  Invalid,
				Message: "Student name must be at least 2 characters.",
			}
		}
	case wizard.FieldSchoolName:
		if len(trimmed) < 3 {
			return FieldResult{
				Field:   field,
				Status:  Invalid,
				Message: "School name must be at least 3 characters.",
			}
		}
	}

	return FieldResult{Field: field, Status: Valid}
}

// CheckConfiguration runs the inline pass over every free-text field.
func CheckConfiguration(cfg wizard.Configuration) []FieldResult {
	fields := []string{
		wizard.FieldSchoolName,
		wizard.FieldStudentName,
		wizard.FieldGraduationDate,
		wizard.FieldCity,
		wizard.FieldState,
	}
	results := make([]FieldResult, 0, len(fields))
	for _, field := range fields {
		results = append(results, CheckField(field, cfg.FieldValue(field)))
	}
	return results
}

// Gate runs the pre-submission pass. When any required field is empty or
// whitespace-only the action must be aborted; the message names every
// missing field, in declared order.
func Gate(cfg wizard.Configuration) GateResult {
	var missing []string
	for _, field := range requiredFields {
		if strings.TrimSpace(cfg.FieldValue(field)) == "" {
			missing = append(missing, DisplayName(field))
		}
	}

	if len(missing) == 0 {
		return GateResult{OK: true}
	}

	return GateResult{
		MissingFields: missing,
		Message:       "Please fill in all required fields: " + strings.Join(missing, ", "),
	}
}

// DisplayName renders a field identifier for user-facing messages.
func DisplayName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
