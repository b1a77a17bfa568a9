// Package validation checks recommendation requests before they reach the ranking engine.
package validation

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid field of a request
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a profile is malformed. No scoring is attempted for it.
//
//nolint:revive // ValidationError reads better than Error at call sites
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error: %s %s", e.Errors[0].Field, e.Errors[0].Message)
	}

	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}
