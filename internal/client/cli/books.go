package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/bookapp/internal/client/api"
	"github.com/dmitrijs2005/bookapp/internal/client/models"
)

const (
	msgBooksFailed   = "Failed to fetch books. Please try again later."
	msgAddBookFailed = "Failed to add book."
)

// Books prints the collection.
func (a *App) Books(ctx context.Context) error {
	books, err := a.api.ListBooks(ctx)
	if err != nil {
		a.logger.Debug(ctx, "listing books", "error", err)
		a.println(msgBooksFailed)
		a.handleAuthError(ctx, err)
		return err
	}

	a.println("Our Book Collection")
	if len(books) == 0 {
		a.println("  (no books yet, type 'addbook' to add one)")
		return nil
	}
	for _, b := range books {
		a.println("  " + b.String())
	}
	return nil
}

// AddBook prompts for a new book and submits it.
func (a *App) AddBook(ctx context.Context) error {
	var nb models.NewBook
	var err error

	if nb.Title, err = getSimpleText(a.reader, "Enter title", a.out); err != nil {
		return err
	}
	if nb.Author, err = getSimpleText(a.reader, "Enter author", a.out); err != nil {
		return err
	}
	if nb.PublishedDate, err = getSimpleText(a.reader, "Enter published date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}

	book, err := a.api.AddBook(ctx, nb)
	if err != nil {
		a.logger.Debug(ctx, "adding book", "error", err)
		a.println(msgAddBookFailed)
		var apiErr *api.Error
		if errors.As(err, &apiErr) && len(apiErr.Messages()) > 0 {
			a.println(strings.Join(apiErr.Messages(), "\n"))
		}
		a.handleAuthError(ctx, err)
		return err
	}

	a.printf("Added %s\n", book)
	return nil
}
