package transport

import (
	"net/http"
	"sync"
)

// Headers is a concurrency-safe set of headers added to every outgoing
// request that does not already carry them.
type Headers struct {
	mu sync.RWMutex
	h  http.Header
}

func NewHeaders() *Headers {
	return &Headers{h: make(http.Header)}
}

func (d *Headers) Set(key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.h.Set(key, value)
}

func (d *Headers) Del(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.h.Del(key)
}

func (d *Headers) Get(key string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.h.Get(key)
}

func (d *Headers) snapshot() http.Header {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.h.Clone()
}

type defaultHeaderTransport struct {
	next    http.RoundTripper
	headers *Headers
}

// DefaultHeaders returns a RoundTripper that fills in headers missing from
// the request. Headers set by the caller win.
func DefaultHeaders(next http.RoundTripper, headers *Headers) http.RoundTripper {
	return &defaultHeaderTransport{next: next, headers: headers}
}

func (t *defaultHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	defaults := t.headers.snapshot()

	var out *http.Request
	for key, values := range defaults {
		if req.Header.Get(key) != "" {
			continue
		}
		if out == nil {
			out = req.Clone(req.Context())
		}
		out.Header[key] = append([]string(nil), values...)
	}
	if out == nil {
		out = req
	}
	return t.next.RoundTrip(out)
}
