package api

import (
	"context"
	"strconv"
)

func (c *Client) GetConnections(ctx context.Context) ([]Connection, error) {
	return callList[Connection](ctx, c, EndpointListConnections)
}

// RequestConnection asks founderID to connect, with an optional note.
func (c *Client) RequestConnection(ctx context.Context, founderID int64, message string) (*Connection, error) {
	return call[Connection](ctx, c, EndpointRequestConnection,
		WithJSON(connectionRequest{ToFounder: founderID, Message: message}))
}

func (c *Client) AcceptConnection(ctx context.Context, id int64) (*Connection, error) {
	return call[Connection](ctx, c, EndpointAcceptConnection, WithPathParam("id", strconv.FormatInt(id, 10)))
}
