package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/founderhub/internal/client/api"
)

const defaultPollInterval = 3 * time.Second

func (a *App) cmdRooms(ctx context.Context, _ []string) error {
	rooms, err := a.api.GetRooms(ctx)
	if err != nil {
		return err
	}
	renderRooms(a.out, rooms)
	return nil
}

func (a *App) cmdJoin(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	if err := a.api.JoinRoom(ctx, id); err != nil {
		return err
	}
	a.printf("Joined room #%d\n", id)
	return nil
}

func (a *App) cmdRoom(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	msgs, err := a.api.GetRoomMessages(ctx, id)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		a.println("No messages yet")
		return nil
	}
	renderRoomMessages(a.out, msgs)
	return nil
}

func (a *App) cmdSay(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	text := textArg(args, 1)
	if text == "" {
		return errUsage
	}
	if _, err := a.api.SendRoomMessage(ctx, id, text); err != nil {
		return err
	}
	return nil
}

func (a *App) cmdFollow(ctx context.Context, args []string) error {
	id, err := idArg(args, 0)
	if err != nil {
		return err
	}
	return a.followRoom(ctx, id, a.pollInterval())
}

func (a *App) pollInterval() time.Duration {
	if a.config != nil && a.config.PollInterval > 0 {
		return a.config.PollInterval
	}
	return defaultPollInterval
}

// followRoom prints the room's messages and then polls for new ones every
// interval until the user presses Enter or ctx ends. Failed polls are logged
// and retried on the next tick, except for a lost session, which stops
// polling and is returned once the user presses Enter.
//
// When ctx ends first, the goroutine waiting for Enter stays blocked on the
// shared reader and takes the next line. That is safe only because every
// caller stops reading input once ctx is done: runREPL checks ctx before
// each prompt, and ctx comes from the signal context that ends the process.
func (a *App) followRoom(ctx context.Context, id int64, interval time.Duration) error {
	msgs, err := a.api.GetRoomMessages(ctx, id)
	if err != nil {
		return err
	}
	renderRoomMessages(a.out, msgs)
	last := lastRoomMessageID(msgs, 0)
	a.printf("Following room #%d, press Enter to stop\n", id)

	stop := make(chan struct{})
	go func() {
		_, _ = a.reader.ReadString('\n')
		close(stop)
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	tick := ticker.C

	var pollErr error
	for {
		select {
		case <-tick:
			msgs, err := a.api.GetRoomMessages(ctx, id)
			if err != nil {
				if api.IsAuthError(err) {
					a.println("error:", err)
					pollErr = err
					tick = nil
					continue
				}
				a.log.Warn(ctx, "room poll failed", "room", id, "error", err)
				continue
			}
			fresh := make([]api.RoomMessage, 0)
			for _, m := range msgs {
				if m.ID > last {
					fresh = append(fresh, m)
				}
			}
			renderRoomMessages(a.out, fresh)
			last = lastRoomMessageID(fresh, last)

		case <-stop:
			return pollErr

		case <-ctx.Done():
			return pollErr
		}
	}
}

func lastRoomMessageID(msgs []api.RoomMessage, last int64) int64 {
	for _, m := range msgs {
		if m.ID > last {
			last = m.ID
		}
	}
	return last
}
