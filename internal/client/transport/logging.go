package transport

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/bookapp/internal/common"
	"github.com/dmitrijs2005/bookapp/internal/logging"
)

type loggingTransport struct {
	next   http.RoundTripper
	logger logging.Logger
}

// Logging writes one debug line per round trip.
func Logging(next http.RoundTripper, logger logging.Logger) http.RoundTripper {
	if logger == nil {
		logger = logging.Discard()
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	args := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
		"retried", IsRetried(req),
		"duration", time.Since(start),
	}
	if err != nil {
		t.logger.Debug(req.Context(), "http request failed", append(args, "error", err)...)
		return resp, err
	}
	t.logger.Debug(req.Context(), "http request", append(args, "status", resp.StatusCode)...)
	return resp, nil
}
