// Package common contains constants and small helpers shared by the client
// packages.
package common

const (
	// AuthorizationHeader carries "Bearer <access token>" on authenticated requests.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader correlates client log lines with server logs.
	RequestIDHeader = "X-Request-Id"

	// AccessTokenKey and RefreshTokenKey name the two halves of the stored
	// credential pair in persistent key/value backends.
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)
