package api

import "context"

// MatchRandomFounder spins the roulette.
func (c *Client) MatchRandomFounder(ctx context.Context) (*MatchResult, error) {
	return call[MatchResult](ctx, c, EndpointRoulette)
}
