package models

import (
	"errors"
	"net/http"
)

// ErrorKind classifies domain failures independently of the transport
type ErrorKind string

const (
	// KindNotFound means a referenced entity does not exist
	KindNotFound ErrorKind = "NotFound"
	// KindValidation means the input is missing fields or holds out-of-range values
	KindValidation ErrorKind = "ValidationError"
)

// Stable messages exposed to API clients
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
)

// DomainError is the error type returned by services for expected failures.
// Status carries the HTTP status the failure should be reported with.
type DomainError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a NotFound error reported with 404
func NewNotFoundError(message string, err error) *DomainError {
	return &DomainError{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a ValidationError reported with the given status.
// Missing fields and bad values use 400, unresolved references use 404.
func NewValidationError(status int, err error) *DomainError {
	return &DomainError{
		Kind:    KindValidation,
		Status:  status,
		Message: MsgValidationErrors,
		Err:     err,
	}
}

// IsNotFound reports whether err is a NotFound domain error
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsValidation reports whether err is a ValidationError domain error
func IsValidation(err error) bool {
	return hasKind(err, KindValidation)
}

func hasKind(err error, kind ErrorKind) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Kind == kind
}

// ErrorResponse is the body used for single-error responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body used for validation failures
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// OAuth/Auth error codes (RFC 6749)
const (
	ErrInvalidRequest       = "invalid_request"
	ErrInvalidClient        = "invalid_client"
	ErrUnsupportedGrantType = "unsupported_grant_type"
)

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(code, description string) OAuth2Error {
	return OAuth2Error{
		Error:            code,
		ErrorDescription: description,
	}
}
