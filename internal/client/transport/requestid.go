package transport

import (
	"net/http"

	"github.com/dmitrijs2005/bookapp/internal/common"
	"github.com/google/uuid"
)

type requestIDTransport struct {
	next http.RoundTripper
}

// RequestID stamps X-Request-ID on requests that have none. A replayed
// request keeps the id of the original.
func RequestID(next http.RoundTripper) http.RoundTripper {
	return &requestIDTransport{next: next}
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(common.RequestIDHeaderName) != "" {
		return t.next.RoundTrip(req)
	}
	out := req.Clone(req.Context())
	out.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	return t.next.RoundTrip(out)
}
