package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/job-recommender/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestErrInvalidRequest(t *testing.T) {
	err := &ErrInvalidRequest{Reason: "unexpected EOF"}
	assert.Equal(t, "invalid request body: unexpected EOF", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	validationErr := &validation.ValidationError{Errors: []validation.FieldError{{Field: "skills", Message: "is required"}}}

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "ErrInvalidRequest", err: &ErrInvalidRequest{Reason: "bad"}, expected: http.StatusBadRequest},
		{name: "ValidationError", err: validationErr, expected: http.StatusBadRequest},
		{name: "Wrapped ValidationError", err: fmt.Errorf("profile: %w", validationErr), expected: http.StatusBadRequest},
		{name: "Unknown error", err: errors.New("db down"), expected: http.StatusInternalServerError},
		{name: "Nil error", err: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorBody(t *testing.T) {
	body := errorBody(&validation.ValidationError{Errors: []validation.FieldError{{Field: "skills", Message: "is required"}}})
	assert.Equal(t, CodeValidationFailed, body.Error)
	assert.Len(t, body.Details, 1)

	body = errorBody(&ErrInvalidRequest{Reason: "bad"})
	assert.Equal(t, CodeInvalidRequest, body.Error)
	assert.Empty(t, body.Details)

	body = errorBody(errors.New("secret connection string"))
	assert.Equal(t, CodeCatalogUnavailable, body.Error)
	assert.NotContains(t, body.Message, "secret")
}
