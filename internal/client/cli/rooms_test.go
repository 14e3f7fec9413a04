package cli

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/founderhub/internal/apitest"
	"github.com/dmitrijs2005/founderhub/internal/client/api"
)

// startFollow runs "follow <room>" in the background with input fed through
// a pipe, and waits until the initial batch has been printed.
func startFollow(t *testing.T, a *App, out *syncBuffer) (*io.PipeWriter, <-chan error) {
	t.Helper()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	a.reader = bufio.NewReader(pr)

	done := make(chan error, 1)
	go func() {
		done <- a.Exec(context.Background(), "follow", []string{strconv.Itoa(buildRoom)})
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "press Enter to stop")
	}, 2*time.Second, 5*time.Millisecond)
	return pw, done
}

func TestFollow_PrintsNewMessagesUntilEnter(t *testing.T) {
	srv := apitest.New(t)
	a, out := newTestApp(t, srv, "")
	logIn(t, a)
	require.NoError(t, a.api.JoinRoom(context.Background(), buildRoom))
	srv.PostRoomMessage(buildRoom, "Grace Hopper", "first")

	pw, done := startFollow(t, a, out)
	assert.Contains(t, out.String(), "Grace Hopper: first")

	srv.PostRoomMessage(buildRoom, "Margaret Hamilton", "second")
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Margaret Hamilton: second")
	}, 2*time.Second, 5*time.Millisecond)

	_, err := pw.Write([]byte("\n"))
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("follow did not stop on Enter")
	}

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "first"), "old messages are printed once")
	assert.Equal(t, 1, strings.Count(got, "second"))
	assert.True(t, a.isLoggedIn())
}

func TestFollow_StopsPollingWhenSessionEnds(t *testing.T) {
	srv := apitest.New(t)
	a, out := newTestApp(t, srv, "")
	logIn(t, a)

	pw, done := startFollow(t, a, out)

	srv.ExpireAccessTokens()
	srv.RevokeRefreshTokens()
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "error: "+api.ErrSessionExpired.Error())
	}, 2*time.Second, 5*time.Millisecond)

	_, err := pw.Write([]byte("\n"))
	require.NoError(t, err)

	select {
	case err := <-done:
		require.ErrorIs(t, err, api.ErrSessionExpired)
	case <-time.After(2 * time.Second):
		t.Fatal("follow did not stop on Enter")
	}
	assert.False(t, a.isLoggedIn())
}

func TestFollow_ContextEnds(t *testing.T) {
	srv := apitest.New(t)
	a, _ := newTestApp(t, srv, "")
	logIn(t, a)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	a.reader = bufio.NewReader(pr)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, a.followRoom(ctx, buildRoom, 10*time.Millisecond))
}

func TestFollow_ContextEndsREPLWithoutReadingMore(t *testing.T) {
	srv := apitest.New(t)
	a, out := newTestApp(t, srv, "")
	logIn(t, a)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	reader := bufio.NewReader(pr)
	a.reader = reader

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		runREPL(ctx, a, a.getStatus, reader, out)
		close(done)
	}()

	_, err := pw.Write([]byte("follow " + strconv.Itoa(buildRoom) + "\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "press Enter to stop")
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("REPL kept running after the context ended")
	}

	// the line goes to the abandoned follow reader, never to a command
	go func() { _, _ = pw.Write([]byte("logout\n")) }()
	time.Sleep(50 * time.Millisecond)

	assert.True(t, a.isLoggedIn())
	assert.NotContains(t, out.String(), "Logged out")
}

func TestFollow_UnknownRoom(t *testing.T) {
	srv := apitest.New(t)
	a, _ := newTestApp(t, srv, "")
	logIn(t, a)

	err := run(t, a, "follow 999")
	require.ErrorIs(t, err, api.ErrRequestRejected)
}

func TestPollInterval(t *testing.T) {
	assert.Equal(t, defaultPollInterval, (&App{}).pollInterval())
	a, _ := newTestApp(t, apitest.New(t), "")
	assert.Equal(t, 10*time.Millisecond, a.pollInterval())
}
