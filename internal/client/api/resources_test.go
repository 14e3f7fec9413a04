package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/founderhub/internal/apitest"
)

func strPtr(s string) *string { return &s }

func TestFounders(t *testing.T) {
	srv := apitest.New(t)
	c, _ := loggedIn(t, srv)
	ctx := context.Background()

	all, err := c.GetFounders(ctx, FounderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mvp, err := c.GetFounders(ctx, FounderFilter{Stage: "mvp"})
	require.NoError(t, err)
	require.Len(t, mvp, 2)
	for _, f := range mvp {
		assert.Equal(t, "mvp", f.Stage)
	}

	narrowed, err := c.GetFounders(ctx, FounderFilter{Stage: "mvp", LookingFor: "technical"})
	require.NoError(t, err)
	require.Len(t, narrowed, 1)
	assert.Equal(t, "Linus Benedict", narrowed[0].Name)

	me, err := c.GetMyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, apitest.DefaultEmail, me.Email)

	other, err := c.GetFounder(ctx, mvp[0].ID)
	require.NoError(t, err)
	if diff := cmp.Diff(mvp[0], *other); diff != "" {
		t.Errorf("GetFounder mismatch (-list +get):\n%s", diff)
	}

	_, err = c.GetFounder(ctx, 999999)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	found, err := c.SearchFounders(ctx, "compilers")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Grace Hopper", found[0].Name)

	var searchQuery string
	for _, r := range srv.Requests() {
		if r.Path == "/api/founders/search/" {
			searchQuery = r.RawQuery
		}
	}
	assert.Equal(t, "q=compilers", searchQuery)
}

func TestProfileLifecycle(t *testing.T) {
	srv := apitest.New(t)
	c, _ := loggedIn(t, srv)
	ctx := context.Background()

	created, err := c.CreateProfile(ctx, Founder{Name: "Ada L.", Stage: "idea", Skills: []string{"math"}})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", created.Name)

	updated, err := c.UpdateProfile(ctx, ProfileUpdate{Stage: strPtr("mvp"), Skills: []string{"math", "engines"}})
	require.NoError(t, err)

	want := Founder{ID: created.ID, Name: "Ada L.", Stage: "mvp", Skills: []string{"math", "engines"}}
	if diff := cmp.Diff(want, *updated); diff != "" {
		t.Errorf("UpdateProfile mismatch (-want +got):\n%s", diff)
	}

	withImage, err := c.UploadImage(ctx, "/tmp/photos/me.png", []byte("\x89PNG fake"))
	require.NoError(t, err)
	assert.Equal(t, "/media/profiles/me.png", withImage.ProfileImage)

	uploads := srv.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, "me.png", uploads[0].Filename)
	assert.Equal(t, len("\x89PNG fake"), uploads[0].Size)

	for _, r := range srv.Requests() {
		if r.Path == "/api/founders/upload_image/" {
			assert.Contains(t, r.ContentType, "multipart/form-data; boundary=")
		}
	}
}

func TestUploadImage_RetriedAfterRefresh(t *testing.T) {
	srv := apitest.New(t)
	c, _ := loggedIn(t, srv)
	srv.ExpireAccessTokens()

	_, err := c.UploadImage(context.Background(), "me.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)

	uploads := srv.Uploads()
	require.Len(t, uploads, 1)
	assert.Equal(t, len("jpeg bytes"), uploads[0].Size, "multipart body is rebuilt for the retry")
	assert.Equal(t, 1, srv.RefreshCalls())
}

func TestIdeas(t *testing.T) {
	srv := apitest.New(t)
	c, _ := loggedIn(t, srv)
	ctx := context.Background()

	idea, err := c.CreateIdea(ctx, NewIdea{Title: "Cofounder CRM", Problem: "spreadsheets", Stage: "idea"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", idea.Author)
	assert.False(t, idea.CreatedAt.IsZero())

	_, err = c.CreateIdea(ctx, NewIdea{})
	var rr *RequestRejectedError
	require.ErrorAs(t, err, &rr)
	assert.Equal(t, "title: This field is required.", rr.Message)

	voted, err := c.UpvoteIdea(ctx, idea.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, voted.Upvotes)

	cm, err := c.CommentOnIdea(ctx, idea.ID, "love it")
	require.NoError(t, err)
	assert.Equal(t, "love it", cm.Content)

	comments, err := c.GetIdeaComments(ctx, idea.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	require.NoError(t, c.CollaborateOnIdea(ctx, idea.ID, ""))

	ideas, err := c.GetIdeas(ctx)
	require.NoError(t, err)
	require.Len(t, ideas, 1)

	want := Idea{ID: idea.ID, Title: "Cofounder CRM", Problem: "spreadsheets", Stage: "idea",
		Upvotes: 1, Author: "Ada Lovelace", CommentsCount: 1}
	if diff := cmp.Diff(want, ideas[0], cmpopts.IgnoreFields(Idea{}, "CreatedAt")); diff != "" {
		t.Errorf("GetIdeas mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchRandomFounder(t *testing.T) {
	srv := apitest.New(t)
	c, _ := loggedIn(t, srv)

	m, err := c.MatchRandomFounder(context.Background())
	require.NoError(t, err)
	assert.True(t, m.MatchedFounder.Online)
	assert.NotEmpty(t, m.SessionID)
	assert.Equal(t, 1, srv.Count(http.MethodPost, "/api/matching/roulette/"))
}

func TestRooms(t *testing.T) {
	srv := apitest.New(t)
	c, _ := loggedIn(t, srv)
	ctx := context.Background()

	rooms, err := c.GetRooms(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, rooms)
	id := rooms[0].ID

	_, err = c.SendRoomMessage(ctx, id, "hi")
	assert.Equal(t, http.StatusForbidden, StatusCode(err))

	require.NoError(t, c.JoinRoom(ctx, id))

	sent, err := c.SendRoomMessage(ctx, id, "hi all")
	require.NoError(t, err)
	assert.Equal(t, "hi all", sent.Content)

	msgs, err := c.GetRoomMessages(ctx, id)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Ada Lovelace", msgs[0].Sender)

	rooms, err = c.GetRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rooms[0].MembersCount)
}

func TestConnectionsAndMessages(t *testing.T) {
	srv := apitest.New(t)
	c, _ := loggedIn(t, srv)
	ctx := context.Background()

	ids := srv.FounderIDs()
	me, other := ids[0], ids[1]

	conn, err := c.RequestConnection(ctx, other, "let's build")
	require.NoError(t, err)
	assert.Equal(t, "pending", conn.Status)
	assert.Equal(t, me, conn.FromFounder)

	incoming := srv.AddIncomingConnection(ids[2])
	accepted, err := c.AcceptConnection(ctx, incoming)
	require.NoError(t, err)
	assert.Equal(t, "accepted", accepted.Status)

	_, err = c.AcceptConnection(ctx, conn.ID)
	assert.Equal(t, http.StatusForbidden, StatusCode(err))

	conns, err := c.GetConnections(ctx)
	require.NoError(t, err)
	assert.Len(t, conns, 2)

	_, err = c.SendMessage(ctx, other, "hello")
	require.NoError(t, err)
	_, err = c.SendMessage(ctx, ids[2], "hey")
	require.NoError(t, err)

	inbox, err := c.GetMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, inbox, 2)

	chat, err := c.GetConversation(ctx, other)
	require.NoError(t, err)
	require.Len(t, chat, 1)
	assert.Equal(t, "hello", chat[0].Content)
}

func TestProgress(t *testing.T) {
	srv := apitest.New(t)
	c, _ := loggedIn(t, srv)
	ctx := context.Background()

	p, err := c.PostProgress(ctx, "Shipped beta", "20 users")
	require.NoError(t, err)
	assert.Equal(t, "Shipped beta", p.Title)

	list, err := c.GetProgress(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "20 users", list[0].Description)
}
