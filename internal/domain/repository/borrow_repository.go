// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for borrow record persistence.
var (
	// ErrBorrowRecordNotFound is returned when a borrow record is not found.
	ErrBorrowRecordNotFound = errors.New("borrow record not found")
	// ErrActiveBorrowExists is returned when the member already holds an active loan for the book.
	ErrActiveBorrowExists = errors.New("active borrow record already exists")
)

// BorrowRepository defines the standard operations for borrow record persistence.
type BorrowRepository interface {
	// Create persists a new borrow record.
	Create(ctx context.Context, record *entity.BorrowRecord) error

	// FindByID retrieves a single borrow record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BorrowRecord, error)

	// FindActiveByUserAndBook retrieves the member's unreturned loan for a
	// book, whether borrowed or overdue. Returns ErrBorrowRecordNotFound
	// when no active loan exists.
	FindActiveByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*entity.BorrowRecord, error)

	// FindByUser retrieves all of a member's borrow records, newest first,
	// with the borrowed book preloaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BorrowRecord, error)

	// Update persists status and return date changes of an existing record.
	Update(ctx context.Context, record *entity.BorrowRecord) error

	// MarkOverdueByUser transitions the member's past-due borrowed records to
	// overdue as of the given date and reports how many rows changed.
	// Idempotent: records already overdue or returned are untouched.
	MarkOverdueByUser(ctx context.Context, userID uuid.UUID, asOf time.Time) (int64, error)

	// CountByStatus returns the number of borrow records in the given state.
	CountByStatus(ctx context.Context, status entity.BorrowStatus) (int64, error)

	// CountOverdue returns the number of unreturned records past due as of
	// the given date, regardless of whether the lazy overdue transition has
	// run for them yet.
	CountOverdue(ctx context.Context, asOf time.Time) (int64, error)
}
