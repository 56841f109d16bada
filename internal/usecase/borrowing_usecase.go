// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardOutput holds everything the member dashboard renders: the account,
// its full borrow history (newest first) and the active/overdue counters.
type DashboardOutput struct {
	User         *entity.User
	Records      []*entity.BorrowRecord
	ActiveLoans  int
	OverdueLoans int
}

// BorrowingUsecase defines the interface for the borrow/return lifecycle.
type BorrowingUsecase interface {
	// BorrowBook creates a loan for the member and takes one copy off the
	// shelf, atomically. Fails when no copy is available or the member
	// already holds an active loan for the title.
	BorrowBook(ctx context.Context, userID, bookID uuid.UUID) (*entity.BorrowRecord, error)

	// ReturnBook completes the member's own loan and puts the copy back on
	// the shelf, atomically. Fails when the record belongs to someone else
	// or was already returned.
	ReturnBook(ctx context.Context, userID, borrowID uuid.UUID) (*entity.BorrowRecord, error)

	// Dashboard returns the member's borrow history after lazily
	// transitioning past-due loans to overdue.
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardOutput, error)
}
