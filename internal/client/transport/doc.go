// Package transport is the HTTP facade shared by every API call.
//
// # Overview
//
// Client owns one *http.Client whose RoundTripper chain is assembled
// explicitly, outermost first:
//
//	RequestID → DefaultHeaders → Refresh → Logging → base
//
// Each stage is an ordinary http.RoundTripper and can be tested alone.
//
// # Refresh protocol
//
// The Refresh stage recovers from an expired access token. When a request
// comes back 401 and has not been retried yet, it is marked retried, the
// refresh token is exchanged for a new access token, the new token is stored
// (before anything is replayed) and the request is sent once more with the
// new bearer header. Without a refresh token the original 401 is returned
// untouched. If the exchange fails the session is ended, the expiry hook runs
// and the caller gets a *RefreshError (errors.Is(err, ErrRefreshFailed)).
//
// Concurrent 401s share a single in-flight refresh. A 401 for a request that
// was sent with an access token that has since been replaced is replayed with
// the current token without another refresh.
package transport
