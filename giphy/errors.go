package giphy

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrMissingAPIKey indicates the client was constructed without an API key.
	ErrMissingAPIKey = errors.New("giphy: API key is required")
)

// TransportError reports a request for which no HTTP response was obtained,
// or whose body could not be read.
type TransportError struct {
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("giphy: transport error: %v", e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that is not syntactically valid JSON.
type ParseError struct {
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("giphy: response body is not valid JSON: %v", e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError reports a body that parsed as JSON but whose top-level value is
// not an object.
type ShapeError struct {
	Value any
}

// Error implements the error interface
func (e *ShapeError) Error() string {
	return fmt.Sprintf("giphy: response root is %T, expected a JSON object", e.Value)
}

// HTTPError reports a non-200 response. StatusCode is the API-reported
// meta.status when the body carries one, else the transport status code.
// Message is the API-reported meta.msg when present.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("giphy: API error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("giphy: API error: status %d", e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates request throttling
func (e *HTTPError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// MappingError reports a required field that is missing or has the wrong
// shape in an otherwise valid response body. Field is the dotted path of the
// offending field; Detail echoes what was found there.
type MappingError struct {
	Field  string
	Detail string
}

// Error implements the error interface
func (e *MappingError) Error() string {
	return fmt.Sprintf("giphy: cannot map field %q: %s", e.Field, e.Detail)
}

func newMappingError(field, format string, args ...any) *MappingError {
	return &MappingError{Field: field, Detail: fmt.Sprintf(format, args...)}
}
