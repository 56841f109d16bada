// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrBookNotFound is returned when a book is not found.
	ErrBookNotFound = errors.New("book not found")
	// ErrDuplicateISBN is returned when a book with the same ISBN already exists.
	ErrDuplicateISBN = errors.New("book with this ISBN already exists")
	// ErrNoCopiesAvailable is returned when a guarded decrement finds no available copy.
	ErrNoCopiesAvailable = errors.New("no copies available")
)

// BookFilter narrows catalog listings. Zero values mean "no filter".
type BookFilter struct {
	// Search matches a case-insensitive substring of title, author or ISBN.
	Search string
	// Category restricts results to a single catalog category.
	Category entity.Category
}

// CatalogStats holds the aggregate counters shown on the homepage and the
// librarian dashboard.
type CatalogStats struct {
	TotalBooks     int64 // Number of titles in the catalog.
	AvailableBooks int64 // Number of titles with at least one available copy.
	TotalCopies    int64 // Sum of total_copies over the catalog.
}

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// Create persists a new book entity to the storage.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a single book by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByIDForUpdate retrieves a book and locks its row for the duration of
	// the surrounding transaction. Only meaningful on a transaction-bound
	// repository obtained through a RepositoryFactory.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// List retrieves books matching the filter, newest first.
	List(ctx context.Context, filter BookFilter) ([]*entity.Book, error)

	// DecrementAvailable atomically takes one copy off the shelf. It only
	// succeeds while available_copies > 0 and returns ErrNoCopiesAvailable
	// otherwise, so the counter can never go negative.
	DecrementAvailable(ctx context.Context, id uuid.UUID) error

	// IncrementAvailable atomically puts one copy back on the shelf, capped
	// at total_copies.
	IncrementAvailable(ctx context.Context, id uuid.UUID) error

	// Stats returns aggregate catalog counters.
	Stats(ctx context.Context) (*CatalogStats, error)
}
