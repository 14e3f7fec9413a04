package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/founderhub/internal/client/services"
	"github.com/dmitrijs2005/founderhub/internal/logging"
)

// stubInputs answers readField prompts in order and readSecret with
// password.
func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := readField, readSecret
	readField = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	readSecret = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		readField = origST
		readSecret = origGP
	})
}

// clearLoginEnv makes Login prompt instead of reading the environment.
func clearLoginEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "")
}

type fakeAuth struct {
	// Signup
	signupEmail, signupUser string
	signupPass              []byte
	signupErr               error

	// Login
	loginEmail string
	loginPass  []byte
	loginErr   error

	// Logout
	logoutCalled bool
	logoutErr    error

	// Status
	status    services.Status
	statusErr error
}

func (f *fakeAuth) Login(_ context.Context, email string, pass []byte) error {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pass...)
	return f.loginErr
}
func (f *fakeAuth) Signup(_ context.Context, email, username string, pass []byte) error {
	f.signupEmail, f.signupUser, f.signupPass = email, username, append([]byte(nil), pass...)
	return f.signupErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Status(context.Context) (services.Status, error) {
	return f.status, f.statusErr
}

func newAuthApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{authService: f, log: logging.Discard(), out: &out, Mode: ModeLoggedOut}, &out
}

func TestSignup_Success(t *testing.T) {
	f := &fakeAuth{}
	a, out := newAuthApp(f)
	stubInputs(t, []string{"alice@example.org", "alice"}, []byte("secret"))

	require.NoError(t, a.Signup(context.Background()))

	assert.Equal(t, "alice@example.org", f.signupEmail)
	assert.Equal(t, "alice", f.signupUser)
	assert.Equal(t, "secret", string(f.signupPass))
	assert.Contains(t, out.String(), "Account created")
	assert.False(t, a.isLoggedIn(), "signup does not log in")
}

func TestSignup_Error(t *testing.T) {
	f := &fakeAuth{signupErr: errors.New("email taken")}
	a, _ := newAuthApp(f)
	stubInputs(t, []string{"alice@example.org", "alice"}, []byte("secret"))

	require.ErrorContains(t, a.Signup(context.Background()), "email taken")
}

func TestLogin_FromEnvironment(t *testing.T) {
	f := &fakeAuth{}
	a, out := newAuthApp(f)
	t.Setenv(EnvEmail, "env@example.org")
	t.Setenv(EnvPassword, "from-env")
	stubInputs(t, nil, nil)

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "env@example.org", f.loginEmail)
	assert.Equal(t, "from-env", string(f.loginPass))
	assert.Equal(t, ModeLoggedIn, a.Mode)
	assert.Equal(t, "env@example.org", a.userName)
	assert.Contains(t, out.String(), "Logged in as env@example.org")
}

func TestLogin_Prompts(t *testing.T) {
	clearLoginEnv(t)
	f := &fakeAuth{}
	a, _ := newAuthApp(f)
	stubInputs(t, []string{"bob@example.org"}, []byte("pw123456"))

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "bob@example.org", f.loginEmail)
	assert.Equal(t, "pw123456", string(f.loginPass))
	assert.True(t, a.isLoggedIn())
}

func TestLogin_FailureKeepsLoggedOut(t *testing.T) {
	clearLoginEnv(t)
	f := &fakeAuth{loginErr: errors.New("invalid credentials")}
	a, _ := newAuthApp(f)
	stubInputs(t, []string{"bob@example.org"}, []byte("nope"))

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.userName)
}

func TestLogin_InputError(t *testing.T) {
	clearLoginEnv(t)
	f := &fakeAuth{}
	a, _ := newAuthApp(f)
	stubInputs(t, nil, nil)

	require.ErrorIs(t, a.Login(context.Background()), io.EOF)
	assert.Empty(t, f.loginEmail, "no login attempt without an email")
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a, out := newAuthApp(f)
	a.Mode, a.userName = ModeLoggedIn, "alice"

	require.NoError(t, a.Logout(context.Background()))

	assert.True(t, f.logoutCalled)
	assert.Equal(t, ModeLoggedOut, a.Mode)
	assert.Empty(t, a.userName)
	assert.Contains(t, out.String(), "Logged out")
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{logoutErr: errors.New("disk full")}
	a, _ := newAuthApp(f)
	a.Mode = ModeLoggedIn

	require.Error(t, a.Logout(context.Background()))
	assert.Equal(t, ModeLoggedIn, a.Mode)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		status services.Status
		want   []string
	}{
		{
			name: "logged out",
			want: []string{"Not logged in"},
		},
		{
			name:   "opaque token",
			status: services.Status{LoggedIn: true},
			want:   []string{"Logged in\n"},
		},
		{
			name:   "valid token",
			status: services.Status{LoggedIn: true, UserID: "7", ExpiresAt: time.Now().Add(time.Hour)},
			want:   []string{"Logged in as user 7", "Access token valid until"},
		},
		{
			name:   "expired token",
			status: services.Status{LoggedIn: true, UserID: "7", ExpiresAt: time.Now().Add(-time.Hour)},
			want:   []string{"Logged in as user 7", "Access token expired at", "refreshed on the next request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := newAuthApp(&fakeAuth{status: tt.status})
			require.NoError(t, a.Status(context.Background()))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestStatus_Error(t *testing.T) {
	a, _ := newAuthApp(&fakeAuth{statusErr: errors.New("store closed")})
	require.Error(t, a.Status(context.Background()))
}
