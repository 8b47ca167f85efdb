// Package validation implements the rule-evaluation pipeline for the
// caller-facing payloads (signup, login, funding). Each payload type has an
// ordered list of field-scoped rules; evaluating a payload yields either a
// typed, normalized value or an itemized list of violations. Malformed input
// is a normal, reportable outcome here, never a panic or a fatal error.
package validation

import (
	"fmt"
	"strings"
)

// FieldViolation describes a single failed check, scoped to the input field
// that caused it.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries the ordered list of violations produced by evaluating a
// payload against its rule set. It is always recoverable by the caller
// correcting input.
type Error struct {
	Violations []FieldViolation
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Rule is one field-scoped check in a validation pipeline. Valid reports
// whether the check passes; rules may close over previously-normalized state
// and return true to skip when a prerequisite rule has already failed.
type Rule struct {
	Field   string
	Message string
	Valid   func() bool
}

// evaluate runs the rules in order and collects every violation.
// Returns nil when all rules pass.
func evaluate(rules []Rule) error {
	var violations []FieldViolation
	for _, r := range rules {
		if !r.Valid() {
			violations = append(violations, FieldViolation{Field: r.Field, Message: r.Message})
		}
	}
	if len(violations) > 0 {
		return &Error{Violations: violations}
	}
	return nil
}

// required reports whether a value contains any non-whitespace content.
// Whitespace-only required fields are invalid regardless of their length.
func required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// digitsOnly reports whether the value is non-empty and consists solely of
// ASCII digits.
func digitsOnly(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
