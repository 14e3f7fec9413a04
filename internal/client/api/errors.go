package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when no access token is stored. No
	// request is sent.
	ErrUnauthenticated = errors.New("not logged in")
	// ErrSessionExpired is returned when the access token was rejected and
	// could not be refreshed. The stored credentials have been cleared.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrNetwork wraps transport failures, timeouts and cancellations.
	ErrNetwork = errors.New("network error")
	// ErrRequestRejected matches every *RequestRejectedError.
	ErrRequestRejected = errors.New("request rejected")
	// ErrMalformedResponse is returned when a successful response does not
	// carry the JSON the endpoint promises.
	ErrMalformedResponse = errors.New("malformed server response")
	// ErrInvalidCredentials matches every *InvalidCredentialsError.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoRefreshToken is returned by Refresh when there is nothing to
	// exchange.
	ErrNoRefreshToken = errors.New("no refresh token")
)

// RequestRejectedError is a non-2xx answer from the API.
type RequestRejectedError struct {
	Status  int
	Message string
}

func (e *RequestRejectedError) Error() string {
	return fmt.Sprintf("request rejected (%d): %s", e.Status, e.Message)
}

func (e *RequestRejectedError) Is(target error) bool {
	return target == ErrRequestRejected
}

// InvalidCredentialsError is a login or signup refused by the server.
type InvalidCredentialsError struct {
	Status  int
	Message string
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials: %s", e.Message)
}

func (e *InvalidCredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var rr *RequestRejectedError
	if errors.As(err, &rr) {
		return rr.Status
	}
	var ic *InvalidCredentialsError
	if errors.As(err, &ic) {
		return ic.Status
	}
	return 0
}

// IsAuthError reports whether err means the user has to log in again.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrSessionExpired)
}
