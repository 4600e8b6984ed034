package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bookapp/internal/client/session"
	"github.com/dmitrijs2005/bookapp/internal/common"
	"github.com/dmitrijs2005/bookapp/internal/logging"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds a whole request, replay included.
const DefaultTimeout = 15 * time.Second

// Client is the shared HTTP facade.
type Client struct {
	http    *http.Client
	headers *Headers
}

type options struct {
	base      http.RoundTripper
	timeout   time.Duration
	logger    logging.Logger
	tokens    TokenSource
	refresher Refresher
	onExpired func(ctx context.Context)
}

type Option func(*options)

// WithBaseTransport sets the innermost RoundTripper. Defaults to
// http.DefaultTransport.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

// WithTimeout sets http.Client.Timeout. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRefresh enables the refresh-and-retry stage.
func WithRefresh(tokens TokenSource, refresher Refresher, onExpired func(ctx context.Context)) Option {
	return func(o *options) {
		o.tokens = tokens
		o.refresher = refresher
		o.onExpired = onExpired
	}
}

// New assembles the RoundTripper chain described in the package docs.
func New(opts ...Option) *Client {
	o := options{
		base:    http.DefaultTransport,
		timeout: DefaultTimeout,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	headers := NewHeaders()

	rt := Logging(o.base, o.logger)
	if o.tokens != nil && o.refresher != nil {
		rt = Refresh(rt, o.tokens, o.refresher, o.onExpired, o.logger)
	}
	rt = DefaultHeaders(rt, headers)
	rt = RequestID(rt)

	return &Client{
		http:    &http.Client{Transport: rt, Timeout: o.timeout},
		headers: headers,
	}
}

// HTTPClient returns the underlying client for callers that need one.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.http.Do(req)
}

// Headers exposes the facade-wide default headers.
func (c *Client) Headers() *Headers {
	return c.headers
}

// SetBearer makes token the default Authorization header. An empty token
// removes it.
func (c *Client) SetBearer(token string) {
	if token == "" {
		c.headers.Del(common.AuthorizationHeaderName)
		return
	}
	c.headers.Set(common.AuthorizationHeaderName, (&oauth2.Token{AccessToken: token}).Type()+" "+token)
}

// SessionListener keeps the default Authorization header in step with the
// session: set on login and refresh, removed on logout.
func (c *Client) SessionListener() session.Listener {
	return func(_ context.Context, ev session.Event) {
		switch ev.Kind {
		case session.EventLoggedIn, session.EventRefreshed:
			c.SetBearer(ev.AccessToken)
		case session.EventLoggedOut:
			c.SetBearer("")
		}
	}
}
