package transport

import (
	"context"
	"net/http"
)

type retriedKey struct{}

// WithRetried returns a shallow copy of req marked as already retried. A
// marked request is never refreshed-and-replayed again.
func WithRetried(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), retriedKey{}, true))
}

// IsRetried reports whether req carries the retried marker.
func IsRetried(req *http.Request) bool {
	v, _ := req.Context().Value(retriedKey{}).(bool)
	return v
}
