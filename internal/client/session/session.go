// Package session owns the client's authentication state.
//
// A Session wraps the token store and is the only component that mutates it.
// Every mutation emits an Event to subscribers, so views and the HTTP facade
// can react to login, refresh and logout without re-reading storage.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bookapp/internal/client/models"
	"github.com/dmitrijs2005/bookapp/internal/client/repositories/tokens"
	"golang.org/x/oauth2"
)

// TokenType is the scheme used in the Authorization header.
const TokenType = "Bearer"

// EventKind says what changed.
type EventKind int

const (
	EventLoggedIn EventKind = iota + 1
	EventRefreshed
	EventLoggedOut
)

func (k EventKind) String() string {
	switch k {
	case EventLoggedIn:
		return "logged_in"
	case EventRefreshed:
		return "refreshed"
	case EventLoggedOut:
		return "logged_out"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after the store has been updated.
// AccessToken is empty for EventLoggedOut.
type Event struct {
	Kind        EventKind
	AccessToken string
}

// Listener receives session events. It runs synchronously on the goroutine
// that changed the session and must not call back into Subscribe.
type Listener func(ctx context.Context, ev Event)

type subscription struct {
	id int
	fn Listener
}

type Session struct {
	store tokens.Repository

	mu        sync.Mutex
	nextID    int
	listeners []subscription
}

func New(store tokens.Repository) *Session {
	return &Session{store: store}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) emit(ctx context.Context, ev Event) {
	s.mu.Lock()
	subs := make([]subscription, len(s.listeners))
	copy(subs, s.listeners)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(ctx, ev)
	}
}

// AccessToken returns the stored access token; ok is false when anonymous.
func (s *Session) AccessToken(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, tokens.Access)
}

// RefreshToken returns the stored refresh token.
func (s *Session) RefreshToken(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, tokens.Refresh)
}

// Token returns both tokens as an oauth2 token. Absent tokens are empty
// strings; the result is never nil on success.
func (s *Session) Token(ctx context.Context) (*oauth2.Token, error) {
	access, _, err := s.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.RefreshToken(ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: access, RefreshToken: refresh, TokenType: TokenType}, nil
}

// IsAuthenticated reports whether an access token is present. Store errors
// count as anonymous.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := s.AccessToken(ctx)
	return err == nil && ok
}

// Begin stores a fresh token pair after a successful login.
func (s *Session) Begin(ctx context.Context, pair models.TokenPair) error {
	if err := s.store.SetPair(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	s.emit(ctx, Event{Kind: EventLoggedIn, AccessToken: pair.AccessToken})
	return nil
}

// Rotate replaces the access token after a successful refresh. The refresh
// token is left as is.
func (s *Session) Rotate(ctx context.Context, access string) error {
	if err := s.store.Set(ctx, tokens.Access, access); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	s.emit(ctx, Event{Kind: EventRefreshed, AccessToken: access})
	return nil
}

// End removes both tokens. Subscribers are notified even when the store
// fails, since callers treat the session as over either way.
func (s *Session) End(ctx context.Context) error {
	err := s.store.Clear(ctx)
	s.emit(ctx, Event{Kind: EventLoggedOut})
	if err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}
