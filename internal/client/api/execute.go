package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/founderhub/internal/common"
)

const genericErrorMessage = "unexpected server response"

// Execute sends one request to ep and returns the raw JSON body of a 2xx
// answer (nil for an empty body).
//
// For authenticated endpoints a 401 is recovered from at most once: the
// request is retried with a token another request already refreshed, or
// with the result of a single-flight Refresh. The retried outcome is final.
// If no fresh token can be obtained the store is cleared and
// ErrSessionExpired is returned.
func (c *Client) Execute(ctx context.Context, ep Endpoint, opts ...RequestOption) (json.RawMessage, error) {
	req := newRequest(opts)
	if req.err != nil {
		return nil, req.err
	}

	if !ep.Auth {
		resp, err := c.send(ctx, ep, req, "")
		if err != nil {
			return nil, err
		}
		return c.outcome(ctx, ep, resp)
	}

	epoch := c.currentEpoch()
	cred, err := c.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrUnauthenticated
	}

	resp, err := c.send(ctx, ep, req, cred.Access)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return c.outcome(ctx, ep, resp)
	}

	token, err := c.recoverSession(ctx, epoch, cred.Access)
	if err != nil {
		return nil, err
	}

	resp, err = c.send(ctx, ep, req, token)
	if err != nil {
		return nil, err
	}
	return c.outcome(ctx, ep, resp)
}

// recoverSession returns an access token to retry with after rejected was
// refused by the server.
func (c *Client) recoverSession(ctx context.Context, epoch uint64, rejected string) (string, error) {
	cur, err := c.store.Get(ctx)
	if err != nil {
		return "", err
	}
	if cur == nil {
		return "", ErrSessionExpired
	}
	if cur.Access != rejected {
		// refreshed by a concurrent request
		return cur.Access, nil
	}

	fresh, err := c.refreshAfter(ctx, rejected)
	if err == nil {
		return fresh.Access, nil
	}
	if errors.Is(err, ErrSessionExpired) {
		return "", err
	}

	c.log.Warn(ctx, "token refresh failed, ending session", "error", err)
	if cErr := c.expire(ctx, epoch); cErr != nil {
		return "", cErr
	}
	return "", fmt.Errorf("%w: %v", ErrSessionExpired, err)
}

// expire clears the store unless the session was replaced since epoch.
func (c *Client) expire(ctx context.Context, epoch uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != epoch {
		return nil
	}
	c.epoch++
	return c.store.Clear(ctx)
}

func (c *Client) send(ctx context.Context, ep Endpoint, req *request, token string) (*resty.Response, error) {
	requestID := uuid.NewString()

	r := c.http.R().
		SetContext(ctx).
		SetHeader(common.RequestIDHeader, requestID)

	if token != "" {
		r.SetHeader(common.AuthorizationHeader, "Bearer "+token)
	}
	if len(req.pathParams) > 0 {
		r.SetPathParams(req.pathParams)
	}
	if len(req.query) > 0 {
		r.SetQueryParamsFromValues(req.query)
	}

	switch {
	case req.file != nil:
		// a fresh reader per attempt, the previous one is drained
		r.SetFileReader(req.file.field, req.file.filename, bytes.NewReader(req.file.data))
		if len(req.form) > 0 {
			r.SetFormData(req.form)
		}
	case req.body != nil:
		r.SetHeader("Content-Type", "application/json").SetBody(req.body)
	}

	resp, err := r.Execute(ep.Method, ep.Path)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "endpoint", ep.Name, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrNetwork, ep, err)
	}

	c.log.Debug(ctx, "api request",
		"method", ep.Method,
		"path", resp.Request.URL,
		"status", resp.StatusCode(),
		"request_id", requestID,
		"duration", resp.Time(),
	)
	return resp, nil
}

func (c *Client) outcome(ctx context.Context, ep Endpoint, resp *resty.Response) (json.RawMessage, error) {
	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, &RequestRejectedError{Status: status, Message: errorMessage(resp.Body())}
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		c.log.Error(ctx, "malformed response", "endpoint", ep.Name, "status", status,
			"content_type", resp.Header().Get("Content-Type"))
		return nil, fmt.Errorf("%w: %s returned a non-JSON body", ErrMalformedResponse, ep)
	}
	return json.RawMessage(body), nil
}

// errorMessage extracts a human readable reason from an error body. It
// understands {"detail": ...}, {"message": ...}, {"error": ...}, field error
// maps such as {"email": ["already taken"]} and bare string arrays.
func errorMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return genericErrorMessage
	}

	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		for _, item := range list {
			if s := textOf(item); s != "" {
				return s
			}
		}
		return genericErrorMessage
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return genericErrorMessage
	}

	for _, key := range []string{"detail", "message", "error"} {
		if s := textOf(payload[key]); s != "" {
			return s
		}
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s := textOf(payload[k]); s != "" {
			if k == "non_field_errors" {
				return s
			}
			return k + ": " + s
		}
	}
	return genericErrorMessage
}

// textOf returns a string value or the first string of an array.
func textOf(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var ss []string
	if err := json.Unmarshal(raw, &ss); err == nil {
		for _, v := range ss {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
