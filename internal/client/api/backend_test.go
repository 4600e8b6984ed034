package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookapp/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

var signingKey = []byte("test-signing-key")

type account struct {
	id      int64
	reg     models.Registration
	profile models.UserProfile
}

// fakeBackend is an in-process stand-in for the book-catalog service.
type fakeBackend struct {
	mu       sync.Mutex
	seq      int64
	accounts map[string]*account // by email
	access   map[string]string   // live access token -> email
	refresh  map[string]string   // live refresh token -> email
	books    []models.Book

	refreshCalls int
	authSeen     map[string][]string // path -> Authorization headers
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{
		accounts: map[string]*account{},
		access:   map[string]string{},
		refresh:  map[string]string{},
		authSeen: map[string][]string{},
	}
	srv := httptest.NewServer(b.routes())
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *fakeBackend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)
	r.Post(PathRegister, b.handleRegister)
	r.Post(PathLogin, b.handleLogin)
	r.Post(PathRefresh, b.handleRefresh)
	r.Group(func(r chi.Router) {
		r.Use(b.authenticated)
		r.Post(PathLogout, b.handleLogout)
		r.Get(PathProfile, b.handleProfile)
		r.Get(PathBooks, b.handleListBooks)
		r.Post(PathBooks, b.handleAddBook)
	})
	return r
}

func (b *fakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.authSeen[r.URL.Path] = append(b.authSeen[r.URL.Path], r.Header.Get("Authorization"))
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Authentication credentials were not provided."})
			return
		}
		b.mu.Lock()
		email, live := b.access[raw]
		b.mu.Unlock()
		if !live {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Given token not valid for any token type"})
			return
		}
		r.Header.Set("X-Test-Email", email)
		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "malformed body"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.accounts[reg.Email]; exists {
		writeJSON(w, http.StatusBadRequest, map[string]any{"email": []string{"user with this email already exists."}})
		return
	}
	b.seq++
	b.accounts[reg.Email] = &account{
		id:      b.seq,
		reg:     reg,
		profile: models.UserProfile{Name: reg.Name, Email: reg.Email, MobileNumber: reg.MobileNumber},
	}
	writeJSON(w, http.StatusCreated, models.RegisteredUser{ID: b.seq, Name: reg.Name, Email: reg.Email, MobileNumber: reg.MobileNumber})
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	_ = json.NewDecoder(r.Body).Decode(&creds)
	b.mu.Lock()
	defer b.mu.Unlock()
	acc, ok := b.accounts[creds.Email]
	if !ok || acc.reg.Password != creds.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, models.TokenPair{
		AccessToken:  b.mintLocked(acc, "access"),
		RefreshToken: b.mintLocked(acc, "refresh"),
	})
}

func (b *fakeBackend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshCalls++
	email, ok := b.refresh[req.Refresh]
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Token is blacklisted", "code": "token_not_valid"})
		return
	}
	writeJSON(w, http.StatusOK, models.RefreshResponse{Access: b.mintLocked(b.accounts[email], "access")})
}

func (b *fakeBackend) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req models.LogoutRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.refresh[req.RefreshToken]; !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid refresh token"})
		return
	}
	delete(b.refresh, req.RefreshToken)
	writeJSON(w, http.StatusOK, map[string]any{"message": "Logout successful"})
}

func (b *fakeBackend) handleProfile(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.accounts[r.Header.Get("X-Test-Email")].profile)
}

func (b *fakeBackend) handleListBooks(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.books)
}

func (b *fakeBackend) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var nb models.NewBook
	if err := json.NewDecoder(r.Body).Decode(&nb); err != nil || nb.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"title": []string{"This field is required."}})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	book := models.Book{ID: int64(len(b.books) + 1), Title: nb.Title, Author: nb.Author, PublishedDate: nb.PublishedDate}
	b.books = append(b.books, book)
	writeJSON(w, http.StatusCreated, book)
}

func (b *fakeBackend) mintLocked(acc *account, kind string) string {
	b.seq++
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        acc.reg.Email,
		"user_id":    acc.id,
		"token_type": kind,
		"jti":        fmt.Sprint(b.seq),
		"exp":        time.Now().Add(5 * time.Minute).Unix(),
	})
	signed, err := tok.SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	if kind == "refresh" {
		b.refresh[signed] = acc.reg.Email
	} else {
		b.access[signed] = acc.reg.Email
	}
	return signed
}

// seedUser registers an account directly.
func (b *fakeBackend) seedUser(reg models.Registration, city *string, age *int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.accounts[reg.Email] = &account{
		id:  b.seq,
		reg: reg,
		profile: models.UserProfile{
			Name: reg.Name, Email: reg.Email, MobileNumber: reg.MobileNumber, City: city, Age: age,
		},
	}
}

// expireAccess invalidates every live access token.
func (b *fakeBackend) expireAccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.access = map[string]string{}
}

// revokeRefresh invalidates every live refresh token.
func (b *fakeBackend) revokeRefresh() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refresh = map[string]string{}
}

func (b *fakeBackend) seen(path string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.authSeen[path]...)
}

func (b *fakeBackend) refreshes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refreshCalls
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
