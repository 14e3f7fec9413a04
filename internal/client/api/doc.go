// Package api is the session-aware client for the founderhub REST API.
//
// A Client owns the credential lifecycle: Login stores the token pair,
// every authenticated call carries the access token as a bearer header, and
// a 401 triggers at most one silent refresh followed by one retry. Refreshes
// are single-flighted so concurrent requests that fail together share one
// call to the refresh endpoint.
//
// Every failure is reported as one of the errors in errors.go; callers match
// them with errors.Is and errors.As.
package api
