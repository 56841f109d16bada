package handler

import (
	"time"

	"libris/internal/domain/entity"
)

// View models returned by the handlers. Entities are never serialized
// directly so the wire format stays stable when the domain changes.

const dateLayout = "2006-01-02"

type userView struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	LibraryCardNumber string `json:"library_card_number,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty"`
	Address           string `json:"address,omitempty"`
	IsLibrarian       bool   `json:"is_librarian"`
	MembershipDate    string `json:"membership_date,omitempty"`
	CreatedAt         string `json:"created_at"`
}

func newUserView(user *entity.User) *userView {
	view := &userView{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.Profile != nil {
		view.LibraryCardNumber = user.Profile.LibraryCardNumber
		view.PhoneNumber = user.Profile.PhoneNumber
		view.Address = user.Profile.Address
		view.IsLibrarian = user.Profile.IsLibrarian
		view.MembershipDate = user.Profile.MembershipDate.Format(dateLayout)
	}

	return view
}

type bookView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	Available       bool   `json:"available"`
	PublicationDate string `json:"publication_date,omitempty"`
	Pages           *int   `json:"pages,omitempty"`
	CreatedAt       string `json:"created_at"`
}

func newBookView(book *entity.Book) *bookView {
	view := &bookView{
		ID:              book.ID.String(),
		Title:           book.Title,
		Author:          book.Author,
		ISBN:            book.ISBN,
		Description:     book.Description,
		Category:        book.Category.String(),
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
		Available:       book.IsAvailable(),
		Pages:           book.Pages,
		CreatedAt:       book.CreatedAt.Format(time.RFC3339),
	}
	if !book.PublicationDate.IsZero() {
		view.PublicationDate = book.PublicationDate.Format(dateLayout)
	}

	return view
}

func newBookViews(books []*entity.Book) []*bookView {
	views := make([]*bookView, len(books))
	for i, book := range books {
		views[i] = newBookView(book)
	}

	return views
}

type borrowView struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	Book       *bookView `json:"book,omitempty"`
	BorrowDate string    `json:"borrow_date"`
	DueDate    string    `json:"due_date"`
	ReturnDate string    `json:"return_date,omitempty"`
	Status     string    `json:"status"`
}

func newBorrowView(record *entity.BorrowRecord) *borrowView {
	view := &borrowView{
		ID:         record.ID.String(),
		BookID:     record.BookID.String(),
		BorrowDate: record.BorrowDate.Format(time.RFC3339),
		DueDate:    record.DueDate.Format(dateLayout),
		Status:     record.Status.String(),
	}
	if record.Book != nil {
		view.Book = newBookView(record.Book)
	}
	if record.ReturnDate != nil {
		view.ReturnDate = record.ReturnDate.Format(dateLayout)
	}

	return view
}

func newBorrowViews(records []*entity.BorrowRecord) []*borrowView {
	views := make([]*borrowView, len(records))
	for i, record := range records {
		views[i] = newBorrowView(record)
	}

	return views
}
