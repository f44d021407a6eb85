package domain

import (
	"errors"
	"net/http"
)

var (
	// ErrRequestFailed is matched by every *APIError.
	ErrRequestFailed = errors.New("request failed")
	// ErrUnsuccessful marks a well-formed envelope carrying success=false.
	ErrUnsuccessful = errors.New("unsuccessful response")

	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrInactiveAccount    = errors.New("account is inactive")
)

// APIError is the single error kind produced for non-2xx responses of the
// dashboard API. Error returns the server message verbatim so it can be shown
// to the operator as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Is(target error) bool { return target == ErrRequestFailed }

// IsUnauthorized reports whether err is an APIError with a 401 status.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is an APIError with a 404 status or wraps ErrNotFound.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return errors.Is(err, ErrNotFound)
}
