// Package api is the typed gateway to the book-catalog REST backend.
//
// # Overview
//
// Client lists one method per backend operation: Register, Login, Logout,
// Profile, ListBooks and AddBook. Gateway implements it over the shared
// *http.Client built by package transport, so a 401 on any call goes
// through the refresh-and-retry protocol before the gateway sees it. The
// gateway itself never retries and never stores tokens.
//
// Refresher performs the token exchange the transport needs. It uses its own
// http.Client so a refresh never re-enters the refresh stage.
//
// # Error Handling
//
// Backend failures come back as *Error carrying the status code and the
// structured payload (Message from "error" or "detail", per-field messages
// in Fields). Match with errors.Is:
//
//   - ErrUnavailable: the request never got an HTTP response.
//   - ErrUnexpected: the backend failed without a usable JSON payload.
//   - common.ErrUnauthorized: any *Error with status 401.
//
// Refresh failures surface unchanged and match transport.ErrRefreshFailed.
package api
