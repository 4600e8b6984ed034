// Package router holds the client-side route table, the guard that gates
// protected screens and the navigation state derived from the session.
//
// The guard is a UX convenience. It only checks that an access token is
// present; the backend still rejects invalid tokens on every call.
package router

import "strings"

const (
	PathHome    = "/"
	PathLogin   = "/login"
	PathSignup  = "/signup"
	PathProfile = "/profile"
	PathAddBook = "/books/new"
)

// Route is one screen of the front-end.
type Route struct {
	Path      string
	Title     string
	Protected bool
}

var routes = []Route{
	{Path: PathHome, Title: "Home"},
	{Path: PathLogin, Title: "Login"},
	{Path: PathSignup, Title: "Sign Up"},
	{Path: PathProfile, Title: "Profile", Protected: true},
	{Path: PathAddBook, Title: "Add Book", Protected: true},
}

// Routes returns the route table in display order.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// Lookup finds the route for path. Trailing slashes are ignored.
func Lookup(path string) (Route, bool) {
	path = Clean(path)
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Clean normalizes a user-typed path: leading slash added, trailing slashes
// and surrounding space removed.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimRight(path, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
