// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a title in the catalog together with its copy inventory.
// TotalCopies tracks every physical copy the library owns; AvailableCopies
// tracks the copies currently on the shelf. The persistence layer guarantees
// 0 <= AvailableCopies <= TotalCopies.
type Book struct {
	ID              uuid.UUID // The unique identifier of the book title.
	Title           string    // The book's title.
	Author          string    // The book's author.
	ISBN            string    // The ISBN, unique across the catalog.
	Description     string    // Optional free-form description.
	Category        Category  // The catalog category, e.g. fiction or science.
	TotalCopies     int       // Number of copies the library owns.
	AvailableCopies int       // Number of copies currently available for borrowing.
	PublicationDate time.Time // Date the book was published.
	Pages           *int      // Optional page count.
	CreatedAt       time.Time // Timestamp of when the book was added to the catalog.
	UpdatedAt       time.Time // Timestamp of the last modification.
}

// IsAvailable reports whether at least one copy is on the shelf.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}
