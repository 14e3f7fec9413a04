package cli

import (
	"context"
)

func (a *App) cmdConnections(ctx context.Context, _ []string) error {
	conns, err := a.api.GetConnections(ctx)
	if err != nil {
		return err
	}
	renderConnections(a.out, conns)
	return nil
}

func (a *App) cmdConnect(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	c, err := a.api.RequestConnection(ctx, id, textArg(args, 1))
	if err != nil {
		return err
	}
	a.printf("Connection request #%d sent\n", c.ID)
	return nil
}

func (a *App) cmdAccept(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	c, err := a.api.AcceptConnection(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Connection #%d %s\n", c.ID, c.Status)
	return nil
}

func (a *App) cmdInbox(ctx context.Context, _ []string) error {
	msgs, err := a.api.GetMessages(ctx)
	if err != nil {
		return err
	}
	renderMessages(a.out, msgs)
	return nil
}

func (a *App) cmdChat(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	msgs, err := a.api.GetConversation(ctx, id)
	if err != nil {
		return err
	}
	renderMessages(a.out, msgs)
	return nil
}

func (a *App) cmdSend(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	text := textArg(args, 1)
	if text == "" {
		return errUsage
	}
	if _, err := a.api.SendMessage(ctx, id, text); err != nil {
		return err
	}
	a.println("Message sent")
	return nil
}
