// Package cli provides the interactive BookApp command-line client.
//
// It wires configuration, the token database, the session, the HTTP facade
// and the API gateway, then runs a REPL whose commands are screens: home,
// login, signup, profile and add-book. Navigation goes through the router,
// so protected screens redirect to login when there is no session.
//
// The navigation bar shown in the prompt is derived from the session and is
// re-derived on every session event (login, refresh, logout) and on every
// navigation.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and App.Go for details.
package cli
