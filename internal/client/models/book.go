// Package models defines the payloads exchanged with the book-catalog API.
package models

import "fmt"

// Book is the canonical book shape returned by GET /api/books/list/.
type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"published_date"`
}

func (b Book) String() string {
	return fmt.Sprintf("#%d %s by %s (%s)", b.ID, b.Title, b.Author, b.PublishedDate)
}

// NewBook is the body of POST /api/books/list/.
type NewBook struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"published_date"`
}
