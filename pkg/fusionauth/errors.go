package fusionauth

import (
	"errors"
	"fmt"
)

// ErrorDetail is one coded error message from the API.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"    yaml:"code,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Errors is the FusionAuth error body: general errors plus errors keyed by
// the offending request field.
type Errors struct {
	FieldErrors   map[string][]ErrorDetail `json:"fieldErrors,omitempty"   yaml:"fieldErrors,omitempty"`
	GeneralErrors []ErrorDetail            `json:"generalErrors,omitempty" yaml:"generalErrors,omitempty"`
}

// Present reports whether the body carried any errors.
func (e *Errors) Present() bool {
	return len(e.FieldErrors) > 0 || len(e.GeneralErrors) > 0
}

// Error implements the error interface.
func (e *Errors) Error() string {
	if len(e.GeneralErrors) > 0 {
		return fmt.Sprintf("%s: %s", e.GeneralErrors[0].Code, e.GeneralErrors[0].Message)
	}

	for field, details := range e.FieldErrors {
		if len(details) > 0 {
			return fmt.Sprintf("%s: %s", field, details[0].Message)
		}
	}

	return "unknown error"
}

// APIError represents a well-formed non-2xx response from the API. The
// status code is always set; the error body is present only when the
// response carried one.
type APIError struct {
	StatusCode int
	Errors     *Errors
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Errors != nil && e.Errors.Present() {
		return fmt.Sprintf("fusionauth: status %d: %s", e.StatusCode, e.Errors.Error())
	}

	return fmt.Sprintf("fusionauth: status %d", e.StatusCode)
}

// OAuthError is the error body of the OAuth2 endpoints.
type OAuthError struct {
	Code        string `json:"error,omitempty"             yaml:"error,omitempty"`
	Description string `json:"error_description,omitempty" yaml:"error_description,omitempty"`
	Reason      string `json:"error_reason,omitempty"      yaml:"error_reason,omitempty"`
}

// Error implements the error interface.
func (e *OAuthError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("oauth: %s: %s", e.Code, e.Description)
	}

	return "oauth: " + e.Code
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrMissingKeyID    = errors.New("missing kid header in JWT")
	ErrUnknownKeyID    = errors.New("no public key for kid")
	ErrInvalidClaims   = errors.New("invalid token claims")
)

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return statusIs(err, 404)
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return statusIs(err, 401)
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	return statusIs(err, 403)
}

// IsBadRequest checks if the error is a 400 from the API.
func IsBadRequest(err error) bool {
	return statusIs(err, 400)
}

func statusIs(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
