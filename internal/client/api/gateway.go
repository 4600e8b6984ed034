package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bookapp/internal/client/models"
	"github.com/dmitrijs2005/bookapp/internal/client/transport"
	"github.com/dmitrijs2005/bookapp/internal/common"
	"github.com/dmitrijs2005/bookapp/internal/logging"
	"golang.org/x/oauth2"
)

// maxErrorBody caps how much of a failed response is read for its payload.
const maxErrorBody = 1 << 20

// AccessTokens reads the current access token. *session.Session implements it.
type AccessTokens interface {
	AccessToken(ctx context.Context) (string, bool, error)
}

// Gateway implements Client over HTTP.
type Gateway struct {
	baseURL string
	http    *http.Client
	tokens  AccessTokens
	logger  logging.Logger
}

var _ Client = (*Gateway)(nil)

// NewGateway returns a gateway rooted at baseURL. tokens may be nil, in which
// case no Authorization header is attached.
func NewGateway(baseURL string, httpClient *http.Client, tokens AccessTokens, logger logging.Logger) *Gateway {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		logger:  logger,
	}
}

func (g *Gateway) Register(ctx context.Context, reg models.Registration) (*models.RegisteredUser, error) {
	var out models.RegisteredUser
	if err := g.call(ctx, http.MethodPost, PathRegister, reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Gateway) Login(ctx context.Context, creds models.Credentials) (*models.TokenPair, error) {
	var out models.TokenPair
	if err := g.call(ctx, http.MethodPost, PathLogin, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Gateway) Logout(ctx context.Context, refreshToken string) error {
	return g.call(ctx, http.MethodPost, PathLogout, models.LogoutRequest{RefreshToken: refreshToken}, nil)
}

func (g *Gateway) Profile(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := g.call(ctx, http.MethodGet, PathProfile, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Gateway) ListBooks(ctx context.Context) ([]models.Book, error) {
	out := []models.Book{}
	if err := g.call(ctx, http.MethodGet, PathBooks, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gateway) AddBook(ctx context.Context, book models.NewBook) (*models.Book, error) {
	var out models.Book
	if err := g.call(ctx, http.MethodPost, PathBooks, book, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// call sends one request and decodes a 2xx JSON body into out (if not nil).
func (g *Gateway) call(ctx context.Context, method, path string, in, out any) error {
	req, err := newRequest(ctx, method, g.baseURL+path, in)
	if err != nil {
		return err
	}
	if err := g.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return g.mapError(ctx, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := decodeError(resp)
		g.logger.Debug(ctx, "backend returned error", "path", path, "status", resp.StatusCode, "error", apiErr)
		return apiErr
	}
	return decodeBody(resp, out)
}

// authorize attaches the stored access token, if any.
func (g *Gateway) authorize(ctx context.Context, req *http.Request) error {
	if g.tokens == nil {
		return nil
	}
	access, ok, err := g.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("read access token: %w", err)
	}
	if ok {
		(&oauth2.Token{AccessToken: access}).SetAuthHeader(req)
	}
	return nil
}

func (g *Gateway) mapError(ctx context.Context, path string, err error) error {
	if errors.Is(err, transport.ErrRefreshFailed) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	g.logger.Warn(ctx, "request failed", "path", path, "error", err)
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// newRequest builds a request with a JSON body. bytes.Reader bodies get
// GetBody set by net/http, so they can be replayed after a refresh.
func newRequest(ctx context.Context, method, url string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", common.ContentTypeJSON)
	if in != nil {
		req.Header.Set(common.ContentTypeHeaderName, common.ContentTypeJSON)
	}
	return req, nil
}

func decodeBody(resp *http.Response, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: decode %d response: %w", ErrUnexpected, resp.StatusCode, err)
	}
	return nil
}

func decodeError(resp *http.Response) *Error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &Error{Status: resp.StatusCode}
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return &Error{Status: resp.StatusCode}
	}
	return newError(resp.StatusCode, payload)
}
