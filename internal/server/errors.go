package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/job-recommender/internal/validation"
)

// Error codes returned in ErrorResponse.Error
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationFailed   = "validation_failed"
	CodeCatalogUnavailable = "catalog_unavailable"
)

// ErrorResponse is the JSON body of every non-2xx response except 429.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message,omitempty"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// ErrInvalidRequest indicates a request body that could not be decoded
type ErrInvalidRequest struct {
	Reason string
}

func (e *ErrInvalidRequest) Error() string {
	return "invalid request body: " + e.Reason
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalid *ErrInvalidRequest
	var validationErr *validation.ValidationError
	switch {
	case errors.As(err, &invalid), errors.As(err, &validationErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorBody builds the response body for err.
func errorBody(err error) ErrorResponse {
	var invalid *ErrInvalidRequest
	var validationErr *validation.ValidationError
	switch {
	case errors.As(err, &invalid):
		return ErrorResponse{Error: CodeInvalidRequest, Message: invalid.Error()}
	case errors.As(err, &validationErr):
		return ErrorResponse{
			Error:   CodeValidationFailed,
			Message: "profile is incomplete or invalid",
			Details: validationErr.Errors,
		}
	default:
		// Internal details stay in the log
		return ErrorResponse{Error: CodeCatalogUnavailable, Message: "job catalog is unavailable"}
	}
}
