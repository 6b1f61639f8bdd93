package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrConflict is returned when a create would violate a uniqueness
// constraint (duplicate title, phone number, or review pair).
var ErrConflict = errors.New("resource already exists")

// NotFoundError is returned when an entity or a referenced entity is
// absent from storage.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for the named resource.
func NewNotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidArgumentError is returned for malformed or out-of-range input
// detected before any storage access.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// NewInvalidArgument builds an InvalidArgumentError.
func NewInvalidArgument(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		code := strings.ToUpper(strings.ReplaceAll(notFound.Resource, " ", "_")) + "_NOT_FOUND"
		return NewHTTPError(http.StatusNotFound, notFound.Error(), code)
	}
	var invalid *InvalidArgumentError
	if errors.As(err, &invalid) {
		return NewHTTPError(http.StatusBadRequest, invalid.Error(), "INVALID_ARGUMENT")
	}
	if errors.Is(err, ErrConflict) {
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
