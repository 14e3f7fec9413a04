package api

import (
	"context"
	"strconv"
)

func (c *Client) GetMessages(ctx context.Context) ([]Message, error) {
	return callList[Message](ctx, c, EndpointListMessages)
}

func (c *Client) SendMessage(ctx context.Context, recipient int64, content string) (*Message, error) {
	return call[Message](ctx, c, EndpointSendMessage,
		WithJSON(messageRequest{Recipient: recipient, Content: content}))
}

// GetConversation returns the messages exchanged with founderID.
func (c *Client) GetConversation(ctx context.Context, founderID int64) ([]Message, error) {
	return callList[Message](ctx, c, EndpointConversation, WithPathParam("id", strconv.FormatInt(founderID, 10)))
}
