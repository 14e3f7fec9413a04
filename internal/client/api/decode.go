package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Page is the paginated list envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func decodeJSON(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// decodeList accepts a bare array or a Page envelope.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	if raw[0] == '[' {
		var items []T
		if err := decodeJSON(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var page Page[T]
	if err := decodeJSON(raw, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func call[T any](ctx context.Context, c *Client, ep Endpoint, opts ...RequestOption) (*T, error) {
	raw, err := c.Execute(ctx, ep, opts...)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := decodeJSON(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func callList[T any](ctx context.Context, c *Client, ep Endpoint, opts ...RequestOption) ([]T, error) {
	raw, err := c.Execute(ctx, ep, opts...)
	if err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}
