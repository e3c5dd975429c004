package errors

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

// ErrorType classifies a DomainError.
type ErrorType string

const (
	TypeValidation      ErrorType = "VALIDATION_ERROR"
	TypeUnauthenticated ErrorType = "UNAUTHENTICATED"
	TypeForbidden       ErrorType = "FORBIDDEN"
	TypeNotFound        ErrorType = "NOT_FOUND"
	TypeConflict        ErrorType = "CONFLICT"
	TypeInternal        ErrorType = "INTERNAL_ERROR"
)

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DomainError is the error type returned by services.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Fields  []FieldError
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack captured when the error was built.
func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

// New builds a DomainError, keeping the stack of err when it carries one.
func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	var stackErr *goerrors.Error
	switch {
	case err != nil && errors.As(err, &stackErr):
		stack = stackErr.Stack()
	case err != nil:
		stack = goerrors.Wrap(err, 2).Stack()
	default:
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// Validation reports malformed or missing input.
func Validation(message string, fields ...FieldError) *DomainError {
	e := New(TypeValidation, message, nil)
	e.Fields = fields
	return e
}

// Unauthenticated reports a missing or invalid session.
func Unauthenticated(message string) *DomainError {
	return New(TypeUnauthenticated, message, nil)
}

// Forbidden reports a valid session acting on someone else's resource.
func Forbidden(message string) *DomainError {
	return New(TypeForbidden, message, nil)
}

// NotFound reports a referenced entity that does not exist.
func NotFound(message string) *DomainError {
	return New(TypeNotFound, message, nil)
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *DomainError {
	return New(TypeConflict, message, nil)
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *DomainError {
	return New(TypeInternal, message, err)
}

// TypeOf returns the type of the first DomainError in err's chain, or
// TypeInternal when there is none.
func TypeOf(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type
	}
	return TypeInternal
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Errors     []FieldError
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
		Message: e.Message,
		Code:    e.Code,
		Errors:  e.Errors,
	}
}

var statusByType = map[ErrorType]int{
	TypeValidation:      http.StatusBadRequest,
	TypeUnauthenticated: http.StatusUnauthorized,
	TypeForbidden:       http.StatusForbidden,
	TypeNotFound:        http.StatusNotFound,
	TypeConflict:        http.StatusConflict,
}

// MapErrorToHTTP maps domain errors to HTTP errors. Internal and unknown errors
// never expose their message.
func MapErrorToHTTP(err error) *HTTPError {
	var de *DomainError
	if errors.As(err, &de) {
		if status, ok := statusByType[de.Type]; ok {
			httpErr := NewHTTPError(status, de.Message, string(de.Type))
			httpErr.Errors = de.Fields
			return httpErr
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", string(TypeInternal))
}
