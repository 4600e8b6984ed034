package api

import (
	"context"

	"github.com/dmitrijs2005/bookapp/internal/client/models"
)

// Client is the backend contract used by the front-end.
type Client interface {
	Register(ctx context.Context, reg models.Registration) (*models.RegisteredUser, error)
	Login(ctx context.Context, creds models.Credentials) (*models.TokenPair, error)
	// Logout asks the backend to blacklist refreshToken.
	Logout(ctx context.Context, refreshToken string) error
	Profile(ctx context.Context) (*models.UserProfile, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	AddBook(ctx context.Context, book models.NewBook) (*models.Book, error)
}

// Endpoint paths, relative to the base URL.
const (
	PathRegister = "/api/users/register/"
	PathLogin    = "/api/users/login/"
	PathLogout   = "/api/users/logout/"
	PathProfile  = "/api/users/profile/"
	PathBooks    = "/api/books/list/"
	PathRefresh  = "/api/users/token/refresh/"
)
