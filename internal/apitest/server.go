// Package apitest runs an in-process fake of the founderhub REST API for
// tests. It issues real HS256 JWTs, enforces bearer authentication on the
// same routes as the real service and records every request it receives.
package apitest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/founderhub/internal/common"
)

// Seeded account.
const (
	DefaultEmail    = "ada@example.com"
	DefaultUsername = "ada"
	DefaultPassword = "secret"
)

const accessTokenTTL = 5 * time.Minute

type ctxKey string

const userIDKey ctxKey = "userID"

// Server is safe for concurrent use by the client under test.
type Server struct {
	URL string

	srv    *httptest.Server
	secret []byte

	mu            sync.Mutex
	gen           int
	nextID        int64
	users         map[string]*user
	refreshTokens map[string]int64
	founders      map[int64]*founder
	ideas         []*idea
	comments      map[int64][]comment
	rooms         []*room
	roomMessages  map[int64][]roomMessage
	connections   []*connection
	messages      []*message
	progress      []*progressUpdate
	uploads       []Upload
	requests      []Request

	rotateRefresh bool
	failRefresh   bool
	refreshDelay  time.Duration

	refreshCalls atomic.Int32
}

// New starts a server seeded with one account, a few founders and rooms.
// It is closed by t.Cleanup when a cleanup registrar is passed.
func New(cleanup ...interface{ Cleanup(func()) }) *Server {
	s := &Server{
		secret:        []byte(mustRandHex(32)),
		nextID:        100,
		users:         map[string]*user{},
		refreshTokens: map[string]int64{},
		founders:      map[int64]*founder{},
		comments:      map[int64][]comment{},
		roomMessages:  map[int64][]roomMessage{},
	}
	s.seed()

	s.srv = httptest.NewServer(s.router())
	s.URL = s.srv.URL

	for _, c := range cleanup {
		c.Cleanup(s.Close)
	}
	return s
}

func (s *Server) Close() {
	s.srv.Close()
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.record)

	r.HandleFunc("/api/token/", s.handleToken).Methods(http.MethodPost)
	r.HandleFunc("/api/token/refresh/", s.handleRefresh).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/register/", s.handleRegister).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.authenticate)

	api.HandleFunc("/founders/", s.handleListFounders).Methods(http.MethodGet)
	api.HandleFunc("/founders/", s.handleCreateProfile).Methods(http.MethodPost)
	api.HandleFunc("/founders/me/", s.handleMe).Methods(http.MethodGet)
	api.HandleFunc("/founders/update_profile/", s.handleUpdateProfile).Methods(http.MethodPatch)
	api.HandleFunc("/founders/upload_image/", s.handleUploadImage).Methods(http.MethodPost)
	api.HandleFunc("/founders/search/", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/founders/{id:[0-9]+}/", s.handleGetFounder).Methods(http.MethodGet)

	api.HandleFunc("/ideas/", s.handleListIdeas).Methods(http.MethodGet)
	api.HandleFunc("/ideas/", s.handleCreateIdea).Methods(http.MethodPost)
	api.HandleFunc("/ideas/{id:[0-9]+}/upvote/", s.handleUpvote).Methods(http.MethodPost)
	api.HandleFunc("/ideas/{id:[0-9]+}/comment/", s.handleComment).Methods(http.MethodPost)
	api.HandleFunc("/ideas/{id:[0-9]+}/comments/", s.handleComments).Methods(http.MethodGet)
	api.HandleFunc("/ideas/{id:[0-9]+}/collaborate/", s.handleCollaborate).Methods(http.MethodPost)

	api.HandleFunc("/matching/roulette/", s.handleRoulette).Methods(http.MethodPost)

	api.HandleFunc("/rooms/", s.handleListRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id:[0-9]+}/join/", s.handleJoinRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id:[0-9]+}/messages/", s.handleRoomMessages).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id:[0-9]+}/send_message/", s.handleSendRoomMessage).Methods(http.MethodPost)

	api.HandleFunc("/connections/", s.handleListConnections).Methods(http.MethodGet)
	api.HandleFunc("/connections/", s.handleRequestConnection).Methods(http.MethodPost)
	api.HandleFunc("/connections/{id:[0-9]+}/accept/", s.handleAcceptConnection).Methods(http.MethodPost)

	api.HandleFunc("/messages/", s.handleListMessages).Methods(http.MethodGet)
	api.HandleFunc("/messages/", s.handleSendMessage).Methods(http.MethodPost)
	api.HandleFunc("/messages/conversation/{id:[0-9]+}/", s.handleConversation).Methods(http.MethodGet)

	api.HandleFunc("/progress/", s.handleListProgress).Methods(http.MethodGet)
	api.HandleFunc("/progress/", s.handlePostProgress).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
	})
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get(common.AuthorizationHeader),
			ContentType:   r.Header.Get("Content-Type"),
			RequestID:     r.Header.Get(common.RequestIDHeader),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// token routes are registered on the parent router
		header := r.Header.Get(common.AuthorizationHeader)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, detail("Authentication credentials were not provided."))
			return
		}

		s.mu.Lock()
		gen := s.gen
		s.mu.Unlock()

		userID, err := userIDFromToken(token, gen, s.secret)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "Given token not valid for any token type",
				"code":   "token_not_valid",
			})
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func userID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

func (s *Server) issueAccess(userID int64) (string, error) {
	return generateToken(userID, s.gen, s.secret, accessTokenTTL)
}

func (s *Server) issueRefresh(userID int64) string {
	token := mustRandHex(32)
	s.refreshTokens[token] = userID
	return token
}

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

// ExpireAccessTokens makes every access token issued so far fail with 401.
func (s *Server) ExpireAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
}

// RevokeRefreshTokens makes every outstanding refresh token invalid.
func (s *Server) RevokeRefreshTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshTokens = map[string]int64{}
}

// SetRotateRefresh makes the refresh endpoint return a new single-use
// refresh token and invalidate the old one.
func (s *Server) SetRotateRefresh(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotateRefresh = v
}

// SetFailRefresh makes the refresh endpoint answer 401.
func (s *Server) SetFailRefresh(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRefresh = v
}

// SetRefreshDelay holds every refresh response for d.
func (s *Server) SetRefreshDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshDelay = d
}

// RefreshCalls reports how many times the refresh endpoint was hit.
func (s *Server) RefreshCalls() int {
	return int(s.refreshCalls.Load())
}

// Requests returns a copy of the request log.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests hit method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Uploads returns the profile images received so far.
func (s *Server) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Upload, len(s.uploads))
	copy(out, s.uploads)
	return out
}

// AccessToken mints a valid access token for the seeded account.
func (s *Server) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, err := s.issueAccess(s.users[DefaultEmail].ID)
	if err != nil {
		panic(err)
	}
	return token
}

// RefreshToken mints a valid refresh token for the seeded account.
func (s *Server) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueRefresh(s.users[DefaultEmail].ID)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func detail(msg string) map[string]string {
	return map[string]string{"detail": msg}
}

func mustRandHex(n int) string {
	s, err := common.MakeRandHexString(n)
	if err != nil {
		panic(err)
	}
	return s
}
