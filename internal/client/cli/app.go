package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/founderhub/internal/client/api"
	"github.com/dmitrijs2005/founderhub/internal/client/config"
	"github.com/dmitrijs2005/founderhub/internal/client/services"
	"github.com/dmitrijs2005/founderhub/internal/client/session"
	"github.com/dmitrijs2005/founderhub/internal/logging"
)

type Mode string

const (
	ModeLoggedOut Mode = "logged out"
	ModeLoggedIn  Mode = "logged in"
)

// API is the part of *api.Client the REPL commands use.
type API interface {
	CreateProfile(ctx context.Context, profile api.Founder) (*api.Founder, error)
	GetFounders(ctx context.Context, filter api.FounderFilter) ([]api.Founder, error)
	GetMyProfile(ctx context.Context) (*api.Founder, error)
	GetFounder(ctx context.Context, id int64) (*api.Founder, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*api.Founder, error)
	UploadImage(ctx context.Context, filename string, data []byte) (*api.Founder, error)
	SearchFounders(ctx context.Context, q string) ([]api.Founder, error)

	GetIdeas(ctx context.Context) ([]api.Idea, error)
	CreateIdea(ctx context.Context, idea api.NewIdea) (*api.Idea, error)
	UpvoteIdea(ctx context.Context, id int64) (*api.Idea, error)
	CommentOnIdea(ctx context.Context, id int64, content string) (*api.Comment, error)
	GetIdeaComments(ctx context.Context, id int64) ([]api.Comment, error)
	CollaborateOnIdea(ctx context.Context, id int64, message string) error

	MatchRandomFounder(ctx context.Context) (*api.MatchResult, error)

	GetRooms(ctx context.Context) ([]api.Room, error)
	JoinRoom(ctx context.Context, id int64) error
	GetRoomMessages(ctx context.Context, id int64) ([]api.RoomMessage, error)
	SendRoomMessage(ctx context.Context, id int64, content string) (*api.RoomMessage, error)

	GetConnections(ctx context.Context) ([]api.Connection, error)
	RequestConnection(ctx context.Context, founderID int64, message string) (*api.Connection, error)
	AcceptConnection(ctx context.Context, id int64) (*api.Connection, error)

	GetMessages(ctx context.Context) ([]api.Message, error)
	SendMessage(ctx context.Context, recipient int64, content string) (*api.Message, error)
	GetConversation(ctx context.Context, founderID int64) ([]api.Message, error)

	GetProgress(ctx context.Context) ([]api.ProgressUpdate, error)
	PostProgress(ctx context.Context, title, description string) (*api.ProgressUpdate, error)
}

type App struct {
	config      *config.Config
	authService services.AuthService
	api         API
	store       session.ClosableStore
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	userName    string
	Mode        Mode
}

// NewApp opens the credential store named by c and builds the API client
// and services on top of it. Logs go to errOut; everything meant for the
// user goes to out.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	log, err := logging.New(errOut, c.Level(), c.LogFormat)
	if err != nil {
		return nil, err
	}

	path, err := c.SessionFile()
	if err != nil {
		return nil, fmt.Errorf("session file: %w", err)
	}

	store, err := session.Open(ctx, c.StoreBackend, path)
	if err != nil {
		log.Error(ctx, "error opening credential store", "backend", c.StoreBackend, "error", err)
		return nil, err
	}

	client := api.New(c.APIBaseURL, store, api.WithTimeout(c.RequestTimeout), api.WithLogger(log))

	return &App{
		config:      c,
		authService: services.NewAuthService(client),
		api:         client,
		store:       store,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
		Mode:        ModeLoggedOut,
	}, nil
}

// Close releases the credential store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "session state changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.Mode == ModeLoggedIn
}

// loadSession syncs Mode with the stored credentials without contacting the
// server.
func (a *App) loadSession(ctx context.Context) error {
	st, err := a.authService.Status(ctx)
	if err != nil {
		return err
	}
	if !st.LoggedIn {
		a.setMode(ctx, ModeLoggedOut)
		return nil
	}
	if a.userName == "" && st.UserID != "" {
		a.userName = "user " + st.UserID
	}
	a.setMode(ctx, ModeLoggedIn)
	return nil
}

// sessionEnded puts the App back into the logged-out state after the API
// reported that the session is gone.
func (a *App) sessionEnded(ctx context.Context) {
	a.userName = ""
	a.setMode(ctx, ModeLoggedOut)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// Run prints the welcome banner, restores the stored session and runs the
// REPL until the user leaves it or ctx ends.
func (a *App) Run(ctx context.Context) error {
	a.println("Welcome to founderhub CLI (type 'help' for commands)")
	if err := a.loadSession(ctx); err != nil {
		return err
	}
	if !a.isLoggedIn() {
		a.println("You are not logged in, type 'login' or 'signup'")
	}
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
