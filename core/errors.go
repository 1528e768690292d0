package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoAuthToken is raised before any network I/O when an authenticated
// call is attempted without a token in the session.
var ErrNoAuthToken = errors.New("no auth token found; please log in")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIError is a non-2xx response from the backend, normalized to the
// message the API reported when its error body could be parsed.
type APIError struct {
	StatusCode int
	Message    string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("%d: %s", err.StatusCode, err.Message)
}

// IsAPIError unwraps err and returns the underlying *APIError, if any.
func IsAPIError(err error) (*APIError, bool) {
	apiErr, ok := errors.Cause(err).(*APIError)
	return apiErr, ok
}
