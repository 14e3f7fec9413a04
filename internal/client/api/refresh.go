package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/founderhub/internal/client/session"
)

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// Refresh exchanges the stored refresh token for a new access token and
// stores the new pair. A refresh token in the response replaces the stored
// one, otherwise the old one is kept.
//
// Concurrent callers share a single in-flight call and its outcome. On any
// failure the store is left untouched. If the session was ended or replaced
// while the call was in flight the result is discarded and
// ErrSessionExpired is returned.
func (c *Client) Refresh(ctx context.Context) (session.Credential, error) {
	return c.refreshAfter(ctx, "")
}

// refreshAfter is Refresh on behalf of a request whose access token rejected
// got a 401. If the stored access token no longer equals rejected when the
// flight starts, another refresh has already finished and the stored pair is
// returned without calling the server.
func (c *Client) refreshAfter(ctx context.Context, rejected string) (session.Credential, error) {
	// the shared call must not die with the first caller's context
	flightCtx := context.WithoutCancel(ctx)

	v, err, shared := c.flight.Do(refreshFlightKey, func() (any, error) {
		return c.refresh(flightCtx, rejected)
	})
	if shared {
		c.log.Debug(ctx, "joined in-flight token refresh")
	}
	if err != nil {
		return session.Credential{}, err
	}
	return v.(session.Credential), nil
}

func (c *Client) refresh(ctx context.Context, rejected string) (session.Credential, error) {
	epoch := c.currentEpoch()

	cur, err := c.store.Get(ctx)
	if err != nil {
		return session.Credential{}, err
	}
	if cur != nil && rejected != "" && cur.Access != rejected {
		c.log.Debug(ctx, "access token already refreshed")
		return *cur, nil
	}
	if cur == nil || cur.Refresh == "" {
		return session.Credential{}, ErrNoRefreshToken
	}

	raw, err := c.Execute(ctx, EndpointTokenRefresh, WithJSON(refreshRequest{Refresh: cur.Refresh}))
	if err != nil {
		return session.Credential{}, fmt.Errorf("refresh: %w", err)
	}

	var pair tokenPair
	if err := decodeJSON(raw, &pair); err != nil {
		return session.Credential{}, fmt.Errorf("refresh: %w", err)
	}
	if pair.Access == "" {
		return session.Credential{}, fmt.Errorf("refresh: %w: no access token", ErrMalformedResponse)
	}

	next := session.Credential{Access: pair.Access, Refresh: cur.Refresh}
	if pair.Refresh != "" {
		next.Refresh = pair.Refresh
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != epoch {
		c.log.Info(ctx, "session changed during token refresh, discarding result")
		return session.Credential{}, ErrSessionExpired
	}
	if err := c.store.Set(ctx, next); err != nil {
		return session.Credential{}, err
	}

	c.log.Info(ctx, "access token refreshed", "rotated", pair.Refresh != "")
	return next, nil
}
