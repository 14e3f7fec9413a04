package api

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/google/go-querystring/query"
)

func (c *Client) CreateProfile(ctx context.Context, profile Founder) (*Founder, error) {
	return call[Founder](ctx, c, EndpointCreateProfile, WithJSON(profile))
}

// GetFounders lists founders matching filter.
func (c *Client) GetFounders(ctx context.Context, filter FounderFilter) ([]Founder, error) {
	values, err := query.Values(filter)
	if err != nil {
		return nil, fmt.Errorf("encode founder filter: %w", err)
	}
	return callList[Founder](ctx, c, EndpointListFounders, WithQuery(values))
}

func (c *Client) GetMyProfile(ctx context.Context) (*Founder, error) {
	return call[Founder](ctx, c, EndpointMyProfile)
}

func (c *Client) GetFounder(ctx context.Context, id int64) (*Founder, error) {
	return call[Founder](ctx, c, EndpointGetFounder, WithPathParam("id", strconv.FormatInt(id, 10)))
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Founder, error) {
	return call[Founder](ctx, c, EndpointUpdateProfile, WithJSON(update))
}

// UploadImage sends data as the caller's profile image.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (*Founder, error) {
	return call[Founder](ctx, c, EndpointUploadImage, WithFile("profile_image", filepath.Base(filename), data))
}

func (c *Client) SearchFounders(ctx context.Context, q string) ([]Founder, error) {
	values, err := query.Values(searchQuery{Q: q})
	if err != nil {
		return nil, fmt.Errorf("encode search query: %w", err)
	}
	return callList[Founder](ctx, c, EndpointSearchFounders, WithQuery(values))
}
