package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/founderhub/internal/client/api"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
	errLoginRequired  = errors.New("not logged in, type 'login' first")
)

type command struct {
	name    string
	usage   string
	summary string
	// auth commands need a session; the others are listed while logged out
	auth bool
	// always commands are listed in both states
	always bool
	run    func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "signup", usage: "signup", summary: "create an account", run: (*App).cmdSignup},
	{name: "login", usage: "login", summary: "log in", run: (*App).cmdLogin},
	{name: "status", usage: "status", summary: "show the stored session", always: true, run: (*App).cmdStatus},
	{name: "logout", usage: "logout", summary: "forget the stored session", auth: true, run: (*App).cmdLogout},

	{name: "me", usage: "me", summary: "show your profile", auth: true, run: (*App).cmdMe},
	{name: "profile", usage: "profile", summary: "create or edit your profile", auth: true, run: (*App).cmdProfile},
	{name: "upload", usage: "upload <path>", summary: "set your profile image", auth: true, run: (*App).cmdUpload},
	{name: "founders", usage: "founders [stage=..] [industry=..] [looking_for=..]", summary: "list founders", auth: true, run: (*App).cmdFounders},
	{name: "founder", usage: "founder <id>", summary: "show a founder", auth: true, run: (*App).cmdFounder},
	{name: "search", usage: "search <query>", summary: "search founders", auth: true, run: (*App).cmdSearch},
	{name: "roulette", usage: "roulette", summary: "match with a random online founder", auth: true, run: (*App).cmdRoulette},

	{name: "ideas", usage: "ideas", summary: "list ideas", auth: true, run: (*App).cmdIdeas},
	{name: "idea", usage: "idea", summary: "post a new idea", auth: true, run: (*App).cmdIdea},
	{name: "upvote", usage: "upvote <id>", summary: "upvote an idea", auth: true, run: (*App).cmdUpvote},
	{name: "comment", usage: "comment <id> <text>", summary: "comment on an idea", auth: true, run: (*App).cmdComment},
	{name: "comments", usage: "comments <id>", summary: "show comments on an idea", auth: true, run: (*App).cmdComments},
	{name: "collaborate", usage: "collaborate <id> [message]", summary: "offer to work on an idea", auth: true, run: (*App).cmdCollaborate},

	{name: "rooms", usage: "rooms", summary: "list rooms", auth: true, run: (*App).cmdRooms},
	{name: "join", usage: "join <id>", summary: "join a room", auth: true, run: (*App).cmdJoin},
	{name: "room", usage: "room <id>", summary: "show room messages", auth: true, run: (*App).cmdRoom},
	{name: "say", usage: "say <id> <text>", summary: "post to a room", auth: true, run: (*App).cmdSay},
	{name: "follow", usage: "follow <id>", summary: "watch a room until Enter", auth: true, run: (*App).cmdFollow},

	{name: "connections", usage: "connections", summary: "list connection requests", auth: true, run: (*App).cmdConnections},
	{name: "connect", usage: "connect <founder-id> [message]", summary: "ask a founder to connect", auth: true, run: (*App).cmdConnect},
	{name: "accept", usage: "accept <id>", summary: "accept a connection request", auth: true, run: (*App).cmdAccept},
	{name: "inbox", usage: "inbox", summary: "list your messages", auth: true, run: (*App).cmdInbox},
	{name: "chat", usage: "chat <founder-id>", summary: "show a conversation", auth: true, run: (*App).cmdChat},
	{name: "send", usage: "send <founder-id> <text>", summary: "send a direct message", auth: true, run: (*App).cmdSend},

	{name: "progress", usage: "progress [title]", summary: "list updates, or post one with a title", auth: true, run: (*App).cmdProgress},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// Exec runs the named command. A session that the API reports as gone puts
// the App back into the logged-out state.
func (a *App) Exec(ctx context.Context, name string, args []string) error {
	c, ok := lookupCommand(name)
	if !ok {
		return errUnknownCommand
	}
	if c.auth && !a.isLoggedIn() {
		return errLoginRequired
	}

	err := c.run(a, ctx, args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errUsage):
		return fmt.Errorf("usage: %s", c.usage)
	case api.IsAuthError(err):
		a.sessionEnded(ctx)
		return fmt.Errorf("%w; type 'login' to sign in", err)
	}
	return err
}

func idArg(args []string, i int) (int64, error) {
	if len(args) <= i {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[i])
	}
	return id, nil
}

func textArg(args []string, i int) string {
	if len(args) <= i {
		return ""
	}
	return strings.Join(args[i:], " ")
}
