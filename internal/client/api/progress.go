package api

import "context"

func (c *Client) GetProgress(ctx context.Context) ([]ProgressUpdate, error) {
	return callList[ProgressUpdate](ctx, c, EndpointListProgress)
}

func (c *Client) PostProgress(ctx context.Context, title, description string) (*ProgressUpdate, error) {
	return call[ProgressUpdate](ctx, c, EndpointPostProgress,
		WithJSON(progressRequest{Title: title, Description: description}))
}
