package api

import (
	"context"
	"strconv"
)

func (c *Client) GetRooms(ctx context.Context) ([]Room, error) {
	return callList[Room](ctx, c, EndpointListRooms)
}

func (c *Client) JoinRoom(ctx context.Context, id int64) error {
	_, err := c.Execute(ctx, EndpointJoinRoom, roomID(id))
	return err
}

func (c *Client) GetRoomMessages(ctx context.Context, id int64) ([]RoomMessage, error) {
	return callList[RoomMessage](ctx, c, EndpointRoomMessages, roomID(id))
}

func (c *Client) SendRoomMessage(ctx context.Context, id int64, content string) (*RoomMessage, error) {
	return call[RoomMessage](ctx, c, EndpointSendRoomMsg, roomID(id), WithJSON(contentBody{Content: content}))
}

func roomID(id int64) RequestOption {
	return WithPathParam("id", strconv.FormatInt(id, 10))
}
