package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/founderhub/internal/client/session"
	"github.com/dmitrijs2005/founderhub/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 15 * time.Second

	refreshFlightKey = "refresh"
)

// Client is safe for concurrent use.
type Client struct {
	http  *resty.Client
	store session.Store
	log   logging.Logger

	flight singleflight.Group

	// mu orders store writes made by Login, Logout and Refresh. epoch is
	// bumped whenever the session is replaced or ended so an in-flight
	// refresh can tell its result is stale.
	mu    sync.Mutex
	epoch uint64
}

type settings struct {
	timeout    time.Duration
	httpClient *http.Client
	logger     logging.Logger
}

// Option configures a Client.
type Option func(*settings)

// WithTimeout bounds every request, including the refresh call.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithHTTPClient sets the underlying transport. The client is copied and
// the copy's Timeout is set from WithTimeout or DefaultTimeout; hc itself is
// not modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) { s.httpClient = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// New creates a client for the API at baseURL that keeps its credentials in
// store.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	s := settings{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// resty writes the timeout into the http.Client, so work on a copy
	hc := &http.Client{}
	if s.httpClient != nil {
		cp := *s.httpClient
		hc = &cp
	}

	rc := resty.NewWithClient(hc).
		SetBaseURL(baseURL).
		SetTimeout(s.timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:  rc,
		store: store,
		log:   s.logger,
	}
}

// Store returns the credential store the client writes to.
func (c *Client) Store() session.Store {
	return c.store
}

func (c *Client) currentEpoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}
