package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bookapp/internal/common"
	"github.com/dmitrijs2005/bookapp/internal/logging"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// Refresher exchanges a refresh token for a new access token. It must not
// send through the Refresh stage itself.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
}

// TokenSource is the slice of the session the Refresh stage needs.
// *session.Session implements it.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, bool, error)
	RefreshToken(ctx context.Context) (string, bool, error)
	Rotate(ctx context.Context, accessToken string) error
	End(ctx context.Context) error
}

type refreshTransport struct {
	next      http.RoundTripper
	tokens    TokenSource
	refresher Refresher
	onExpired func(ctx context.Context)
	logger    logging.Logger

	group singleflight.Group

	mu         sync.Mutex
	superseded string
}

// Refresh wraps next with the refresh-and-retry protocol. onExpired, if not
// nil, runs once per failed refresh after the session has been ended.
func Refresh(next http.RoundTripper, tokens TokenSource, refresher Refresher, onExpired func(ctx context.Context), logger logging.Logger) http.RoundTripper {
	if logger == nil {
		logger = logging.Discard()
	}
	return &refreshTransport{
		next:      next,
		tokens:    tokens,
		refresher: refresher,
		onExpired: onExpired,
		logger:    logger,
	}
}

func (t *refreshTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized || IsRetried(req) {
		return resp, err
	}

	ctx := req.Context()
	pending := WithRetried(req)

	refreshToken, ok, err := t.tokens.RefreshToken(ctx)
	if err != nil {
		t.logger.Warn(ctx, "reading refresh token failed", "error", err)
		return resp, nil
	}
	if !ok {
		return resp, nil
	}
	if !replayable(req) {
		t.logger.Warn(ctx, "request body cannot be replayed, returning 401", "path", req.URL.Path)
		return resp, nil
	}

	access, err := t.currentOrRefreshed(ctx, req, refreshToken)
	discard(resp)
	if err != nil {
		return nil, err
	}

	retry, err := rewind(pending, access)
	if err != nil {
		return nil, err
	}
	return t.next.RoundTrip(retry)
}

// currentOrRefreshed returns the access token to replay with. When the token
// this request was sent with has already been replaced by an earlier refresh,
// the stored token is reused; otherwise a refresh is performed, shared by all
// callers holding the same refresh token.
func (t *refreshTransport) currentOrRefreshed(ctx context.Context, req *http.Request, refreshToken string) (string, error) {
	if sent := bearer(req); sent != "" && sent == t.lastSuperseded() {
		current, ok, err := t.tokens.AccessToken(ctx)
		if err == nil && ok && current != sent {
			return current, nil
		}
	}

	v, err, shared := t.group.Do(refreshToken, func() (any, error) {
		return t.refresh(ctx, refreshToken)
	})
	if shared {
		t.logger.Debug(ctx, "joined in-flight token refresh", "path", req.URL.Path)
	}
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (t *refreshTransport) refresh(ctx context.Context, refreshToken string) (string, error) {
	access, err := t.refresher.Refresh(ctx, refreshToken)
	if err == nil && access == "" {
		err = common.ErrTokenMissing
	}
	if err != nil {
		t.logger.Warn(ctx, "token refresh failed, ending session", "error", err)
		if endErr := t.tokens.End(ctx); endErr != nil {
			t.logger.Error(ctx, "clearing tokens failed", "error", endErr)
		}
		if t.onExpired != nil {
			t.onExpired(ctx)
		}
		return "", &RefreshError{Err: err}
	}

	previous, _, _ := t.tokens.AccessToken(ctx)
	if err := t.tokens.Rotate(ctx, access); err != nil {
		return "", fmt.Errorf("store refreshed token: %w", err)
	}
	t.mu.Lock()
	t.superseded = previous
	t.mu.Unlock()
	t.logger.Info(ctx, "access token refreshed")
	return access, nil
}

// lastSuperseded is the access token replaced by the most recent refresh.
func (t *refreshTransport) lastSuperseded() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.superseded
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

// rewind clones req with a fresh body and the new bearer header.
func rewind(req *http.Request, access string) (*http.Request, error) {
	out := req.Clone(req.Context())
	if req.GetBody != nil && req.Body != nil && req.Body != http.NoBody {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
		out.Body = body
	}
	(&oauth2.Token{AccessToken: access}).SetAuthHeader(out)
	return out, nil
}

func bearer(req *http.Request) string {
	scheme, token, ok := strings.Cut(req.Header.Get(common.AuthorizationHeaderName), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return token
}

func discard(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
