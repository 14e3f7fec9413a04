package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	rr := fmt.Errorf("wrapped: %w", &RequestRejectedError{Status: 409, Message: "conflict"})
	assert.ErrorIs(t, rr, ErrRequestRejected)
	assert.NotErrorIs(t, rr, ErrInvalidCredentials)
	assert.Equal(t, 409, StatusCode(rr))
	assert.EqualError(t, errors.Unwrap(rr), "request rejected (409): conflict")

	ic := &InvalidCredentialsError{Status: 401, Message: "bad password"}
	assert.ErrorIs(t, ic, ErrInvalidCredentials)
	assert.Equal(t, 401, StatusCode(ic))
	assert.EqualError(t, ic, "invalid credentials: bad password")

	assert.Zero(t, StatusCode(ErrNetwork))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(ErrUnauthenticated))
	assert.True(t, IsAuthError(fmt.Errorf("%w: refresh failed", ErrSessionExpired)))
	assert.False(t, IsAuthError(&RequestRejectedError{Status: 401}))
	assert.False(t, IsAuthError(ErrNetwork))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", genericErrorMessage},
		{"html", "<html>oops</html>", genericErrorMessage},
		{"detail", `{"detail":"Not found."}`, "Not found."},
		{"message", `{"message":"slow down"}`, "slow down"},
		{"error", `{"error":"boom"}`, "boom"},
		{"detail wins", `{"error":"x","detail":"y"}`, "y"},
		{"field errors", `{"username":["taken"],"email":["invalid"]}`, "email: invalid"},
		{"non field errors", `{"non_field_errors":["Passwords differ."]}`, "Passwords differ."},
		{"string list", `["first","second"]`, "first"},
		{"empty list", `[]`, genericErrorMessage},
		{"no strings", `{"count":3}`, genericErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage([]byte(tt.body)))
		})
	}
}
