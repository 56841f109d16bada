// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BorrowStatus represents the lifecycle state of a borrow record.
type BorrowStatus string

const (
	// StatusBorrowed indicates an active loan.
	StatusBorrowed BorrowStatus = "borrowed"
	// StatusReturned indicates a completed loan. Terminal.
	StatusReturned BorrowStatus = "returned"
	// StatusOverdue indicates an active loan whose due date has passed.
	StatusOverdue BorrowStatus = "overdue"
)

// String returns the string representation of the BorrowStatus.
func (s BorrowStatus) String() string {
	return string(s)
}

// IsValid checks if the BorrowStatus is a valid value.
func (s BorrowStatus) IsValid() bool {
	switch s {
	case StatusBorrowed, StatusReturned, StatusOverdue:
		return true
	default:
		return false
	}
}

// BorrowRecord tracks a single loan transaction and its lifecycle.
// Allowed transitions: borrowed -> returned, borrowed -> overdue,
// overdue -> returned. No transition leaves returned.
type BorrowRecord struct {
	ID         uuid.UUID    // The unique identifier of the loan.
	UserID     uuid.UUID    // The borrowing member's account ID.
	BookID     uuid.UUID    // The borrowed book's ID.
	BorrowDate time.Time    // Timestamp of when the loan was created.
	DueDate    time.Time    // Date the copy is due back.
	ReturnDate *time.Time   // Date the copy came back. Nil while the loan is active.
	Status     BorrowStatus // Current lifecycle state.

	// Book is the borrowed title, preloaded for dashboard views. May be nil.
	Book *Book
}

// IsActive reports whether the loan still holds a copy, i.e. the copy has
// not been returned yet. Overdue loans are still active.
func (r *BorrowRecord) IsActive() bool {
	return r.Status != StatusReturned && r.ReturnDate == nil
}

// IsOverdue reports whether the loan is past due at the given instant
// without having been returned.
func (r *BorrowRecord) IsOverdue(now time.Time) bool {
	return r.ReturnDate == nil && now.After(r.DueDate)
}

// RefreshOverdue transitions an active past-due loan to overdue and reports
// whether the status changed. Idempotent: already-overdue and returned
// records are left untouched.
func (r *BorrowRecord) RefreshOverdue(now time.Time) bool {
	if r.Status != StatusBorrowed {
		return false
	}
	if !r.IsOverdue(now) {
		return false
	}

	r.Status = StatusOverdue

	return true
}

// MarkReturned completes the loan. Valid from both borrowed and overdue.
func (r *BorrowRecord) MarkReturned(returnDate time.Time) {
	r.Status = StatusReturned
	r.ReturnDate = &returnDate
}
