// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddBookInput defines the data required to add a title to the catalog.
type AddBookInput struct {
	Title           string
	Author          string
	ISBN            string
	Description     string
	Category        entity.Category
	TotalCopies     int
	AvailableCopies int
	PublicationDate time.Time
	Pages           *int
}

// ListBooksInput narrows a catalog listing. Zero values list everything.
type ListBooksInput struct {
	Search   string
	Category entity.Category
}

// --- Output DTOs ---

// HomeStats holds the counters shown on the public landing page.
type HomeStats struct {
	TotalBooks     int64
	AvailableBooks int64
	TotalMembers   int64
	ActiveLoans    int64
}

// LibrarianStats holds the aggregate counters of the librarian dashboard.
type LibrarianStats struct {
	TotalBooks     int64
	TotalCopies    int64
	AvailableBooks int64
	ActiveLoans    int64
	OverdueLoans   int64
	TotalMembers   int64
}

// CatalogUsecase defines the interface for catalog-related business operations.
type CatalogUsecase interface {
	// AddBook adds a new title to the catalog. Librarian only; the access
	// check happens in the delivery layer.
	AddBook(ctx context.Context, input *AddBookInput) (*entity.Book, error)

	// ListBooks returns catalog titles matching the filter, newest first.
	ListBooks(ctx context.Context, input *ListBooksInput) ([]*entity.Book, error)

	// GetBook returns a single title by ID.
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// HomeStats returns the landing page counters.
	HomeStats(ctx context.Context) (*HomeStats, error)

	// LibrarianStats returns the librarian dashboard counters.
	LibrarianStats(ctx context.Context) (*LibrarianStats, error)
}
