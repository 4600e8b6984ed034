package router

import (
	"context"
	"sync"
)

// Authenticator reports whether an access token is present.
// *session.Session implements it.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// Guard gates protected routes.
type Guard struct {
	auth Authenticator
}

func NewGuard(auth Authenticator) *Guard {
	return &Guard{auth: auth}
}

// Allow reports whether route may be rendered now. The check runs against
// the store at call time and is never cached.
func (g *Guard) Allow(ctx context.Context, route Route) bool {
	return !route.Protected || g.auth.IsAuthenticated(ctx)
}

// Navigation is the outcome of Router.Navigate.
type Navigation struct {
	Requested  string
	Route      Route
	Redirected bool
}

// Router tracks the current screen and its history.
type Router struct {
	guard *Guard

	mu      sync.Mutex
	current Route
	history []string
}

func New(auth Authenticator) *Router {
	home, _ := Lookup(PathHome)
	return &Router{guard: NewGuard(auth), current: home, history: []string{PathHome}}
}

func (r *Router) Guard() *Guard {
	return r.guard
}

// Navigate resolves path. Unknown paths render home. A protected path
// without a session redirects to login, replacing the denied entry so it is
// not kept in history.
func (r *Router) Navigate(ctx context.Context, path string) Navigation {
	nav := Navigation{Requested: Clean(path)}

	route, ok := Lookup(path)
	if !ok {
		route, _ = Lookup(PathHome)
	}
	if !r.guard.Allow(ctx, route) {
		route, _ = Lookup(PathLogin)
		nav.Redirected = true
	}
	nav.Route = route

	r.mu.Lock()
	r.current = route
	r.history = append(r.history, route.Path)
	r.mu.Unlock()

	return nav
}

// Current returns the route last navigated to.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns visited paths, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}
