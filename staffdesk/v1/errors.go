package v1

import (
	"errors"
	"fmt"
)

// Error taxonomy for backend calls. Endpoints wrap these in an *APIError so
// callers can switch on errors.Is while still seeing the HTTP detail.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnexpectedShape = errors.New("unexpected response shape")
	ErrNetwork         = errors.New("network failure")
)

// APIError carries the taxonomy kind plus the HTTP context of a failed call.
type APIError struct {
	Kind   error
	Status int
	Method string
	Path   string
	Body   string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Kind)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s %s: %v (status %d: %s)", e.Method, e.Path, e.Kind, e.Status, e.Body)
	}
	return fmt.Sprintf("%s %s: %v (status %d)", e.Method, e.Path, e.Kind, e.Status)
}

func (e *APIError) Unwrap() error { return e.Kind }

func invalidArgument(method, path, detail string) error {
	return &APIError{Kind: ErrInvalidArgument, Method: method, Path: path, Body: detail}
}
