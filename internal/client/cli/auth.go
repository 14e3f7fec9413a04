package cli

import (
	"context"
	"os"
	"time"

	"github.com/dmitrijs2005/founderhub/internal/common"
)

// Environment variables read by Login before prompting.
const (
	EnvEmail    = "FOUNDERHUB_EMAIL"
	EnvPassword = "FOUNDERHUB_PASSWORD"
)

// Prompts go through these so tests can answer them.
var (
	readField  = ReadField
	readSecret = ReadSecret
)

// Signup prompts for email, username and password and creates an account.
// It does not log in. The password byte slice is wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	email, err := readField(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	username, err := readField(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := readSecret(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Signup(ctx, email, username, password); err != nil {
		return err
	}

	a.println("Account created, type 'login' to sign in")
	return nil
}

// Login authenticates with FOUNDERHUB_EMAIL and FOUNDERHUB_PASSWORD when they
// are set and prompts for whatever is missing. On success the session is
// stored and the App switches to ModeLoggedIn.
func (a *App) Login(ctx context.Context) error {
	email := os.Getenv(EnvEmail)
	if email == "" {
		var err error
		if email, err = readField(a.reader, "Email", a.out); err != nil {
			return err
		}
	}

	var password []byte
	if v := os.Getenv(EnvPassword); v != "" {
		password = []byte(v)
	} else {
		var err error
		if password, err = readSecret(a.out); err != nil {
			return err
		}
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		a.log.Warn(ctx, "login unsuccessful", "email", email, "error", err)
		return err
	}

	a.userName = email
	a.setMode(ctx, ModeLoggedIn)
	a.printf("Logged in as %s\n", email)
	return nil
}

// Logout forgets the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.sessionEnded(ctx)
	a.println("Logged out")
	return nil
}

// Status prints what the stored session says about the user.
func (a *App) Status(ctx context.Context) error {
	st, err := a.authService.Status(ctx)
	if err != nil {
		return err
	}
	if !st.LoggedIn {
		a.println("Not logged in")
		return nil
	}

	if st.UserID != "" {
		a.printf("Logged in as user %s\n", st.UserID)
	} else {
		a.println("Logged in")
	}

	switch {
	case st.ExpiresAt.IsZero():
	case st.Expired(time.Now()):
		a.printf("Access token expired at %s, it is refreshed on the next request\n", formatTime(st.ExpiresAt))
	default:
		a.printf("Access token valid until %s\n", formatTime(st.ExpiresAt))
	}
	return nil
}

func (a *App) cmdSignup(ctx context.Context, _ []string) error { return a.Signup(ctx) }
func (a *App) cmdLogin(ctx context.Context, _ []string) error  { return a.Login(ctx) }
func (a *App) cmdLogout(ctx context.Context, _ []string) error { return a.Logout(ctx) }
func (a *App) cmdStatus(ctx context.Context, _ []string) error { return a.Status(ctx) }
