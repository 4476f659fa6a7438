package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrNotFound = errors.New("HTTP 404 Not Found")

// ArgumentError reports caller input that failed local validation. Message
// is returned to the caller verbatim.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return e.Message }

func Argumentf(format string, args ...any) error {
	return &ArgumentError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that the provider has no such resource.
type NotFoundError struct {
	Kind Kind
}

func (e *NotFoundError) Error() string { return ErrNotFound.Error() }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// APIError is a provider-side rejection carrying a structured errors list.
type APIError struct {
	Message string
	Payload json.RawMessage
}

func (e *APIError) Error() string { return e.Message }

// ConfigurationError reports missing credentials or secrets.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// HTTPError is returned by the transport for non-2xx responses. Body holds
// the decoded response object when the provider sent one.
type HTTPError struct {
	StatusCode int
	Body       Document
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// ErrorType classifies an error for logs, metrics and HTTP responses.
func ErrorType(err error) string {
	var (
		argErr    *ArgumentError
		apiErr    *APIError
		configErr *ConfigurationError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &argErr):
		return "argument"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.As(err, &apiErr):
		return "api"
	case errors.As(err, &configErr):
		return "configuration"
	default:
		return "provider_error"
	}
}
