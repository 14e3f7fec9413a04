// Package services contains application services for the founderhub CLI.
// This file defines the authentication service: login, signup, logout and a
// status report built from the stored session.
package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/founderhub/internal/client/api"
	"github.com/dmitrijs2005/founderhub/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a session and persist it.
//   - Signup: create an account on the server; no session is created.
//   - Logout: forget the stored session.
//   - Status: describe the stored session without contacting the server.
//
// Passwords are passed as byte slices so callers can wipe them.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Signup(ctx context.Context, email, username string, password []byte) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) (Status, error)
}

// AuthClient is the part of *api.Client the service needs.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (session.Credential, error)
	Signup(ctx context.Context, email, username, password string) (*api.Account, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*session.Credential, error)
}

// Status describes the stored session. UserID and ExpiresAt come from the
// access token's claims, read without verifying the signature; they are for
// display only.
type Status struct {
	LoggedIn  bool
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the access token's exp claim has passed. An expired
// access token is still usable while the refresh token is valid.
func (s Status) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type accessClaims struct {
	jwt.RegisteredClaims
	UserID any `json:"user_id"`
}

type authService struct {
	client AuthClient
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client AuthClient) AuthService {
	return &authService{client: client}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	if _, err := a.client.Login(ctx, email, string(password)); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return nil
}

func (a *authService) Signup(ctx context.Context, email, username string, password []byte) error {
	if _, err := a.client.Signup(ctx, email, username, string(password)); err != nil {
		return fmt.Errorf("signup error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.client.Logout(ctx)
}

func (a *authService) Status(ctx context.Context) (Status, error) {
	cred, err := a.client.Session(ctx)
	if err != nil {
		return Status{}, err
	}
	if cred == nil {
		return Status{}, nil
	}

	st := Status{LoggedIn: true}

	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(cred.Access, &claims); err != nil {
		// opaque token, nothing more to show
		return st, nil
	}
	switch id := claims.UserID.(type) {
	case nil:
		st.UserID = claims.Subject
	case float64:
		st.UserID = strconv.FormatFloat(id, 'f', -1, 64)
	default:
		st.UserID = fmt.Sprint(id)
	}
	if claims.ExpiresAt != nil {
		st.ExpiresAt = claims.ExpiresAt.Time
	}
	return st, nil
}
