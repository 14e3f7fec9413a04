package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/founderhub/internal/client/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges email and password for a token pair and stores it,
// replacing any previous session.
func (c *Client) Login(ctx context.Context, email, password string) (session.Credential, error) {
	raw, err := c.Execute(ctx, EndpointLogin, WithJSON(loginRequest{Email: email, Password: password}))
	if err != nil {
		return session.Credential{}, asInvalidCredentials(err)
	}

	var pair tokenPair
	if err := decodeJSON(raw, &pair); err != nil {
		return session.Credential{}, err
	}
	if pair.Access == "" || pair.Refresh == "" {
		return session.Credential{}, fmt.Errorf("%w: login response without token pair", ErrMalformedResponse)
	}

	cred := session.Credential{Access: pair.Access, Refresh: pair.Refresh}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	if err := c.store.Set(ctx, cred); err != nil {
		return session.Credential{}, err
	}

	c.log.Info(ctx, "logged in", "email", email)
	return cred, nil
}

// Signup creates an account. It does not log in.
func (c *Client) Signup(ctx context.Context, email, username, password string) (*Account, error) {
	raw, err := c.Execute(ctx, EndpointRegister, WithJSON(registerRequest{
		Email:    email,
		Username: username,
		Password: password,
	}))
	if err != nil {
		return nil, asInvalidCredentials(err)
	}

	acc := &Account{Email: email, Username: username}
	if err := decodeJSON(raw, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Logout forgets the stored session. Requests started afterwards fail with
// ErrUnauthenticated and a refresh still in flight is discarded.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.log.Info(ctx, "logged out")
	return nil
}

// Session returns the stored pair, or nil when logged out.
func (c *Client) Session(ctx context.Context) (*session.Credential, error) {
	return c.store.Get(ctx)
}

func asInvalidCredentials(err error) error {
	var rr *RequestRejectedError
	if errors.As(err, &rr) && (rr.Status == http.StatusBadRequest || rr.Status == http.StatusUnauthorized) {
		return &InvalidCredentialsError{Status: rr.Status, Message: rr.Message}
	}
	return err
}
