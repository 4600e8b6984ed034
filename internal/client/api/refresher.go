package api

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bookapp/internal/client/models"
	"github.com/dmitrijs2005/bookapp/internal/client/transport"
)

// Refresher exchanges a refresh token at PathRefresh. It talks through its
// own client, never through the refresh stage.
type Refresher struct {
	gw *Gateway
}

var _ transport.Refresher = (*Refresher)(nil)

// NewRefresher returns a Refresher for baseURL with the given request
// timeout. base is the innermost RoundTripper (nil means the default).
func NewRefresher(baseURL string, base http.RoundTripper, timeout time.Duration) *Refresher {
	if base == nil {
		base = http.DefaultTransport
	}
	hc := &http.Client{Transport: transport.RequestID(base), Timeout: timeout}
	return &Refresher{gw: NewGateway(baseURL, hc, nil, nil)}
}

func (r *Refresher) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out models.RefreshResponse
	if err := r.gw.call(ctx, http.MethodPost, PathRefresh, models.RefreshRequest{Refresh: refreshToken}, &out); err != nil {
		return "", err
	}
	return out.Access, nil
}
