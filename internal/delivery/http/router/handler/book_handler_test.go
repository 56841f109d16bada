package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	mockUC "libris/internal/mocks/usecase"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testBook(bookID uuid.UUID) *entity.Book {
	pages := 380
	return &entity.Book{
		ID:              bookID,
		Title:           "The Go Programming Language",
		Author:          "Alan A. A. Donovan",
		ISBN:            "9780134190440",
		Category:        entity.CategoryTechnology,
		TotalCopies:     3,
		AvailableCopies: 2,
		PublicationDate: time.Date(2015, 10, 26, 0, 0, 0, 0, time.UTC),
		Pages:           &pages,
		CreatedAt:       time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestBookHandler_AddBook_Success(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewBookHandler(BookHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	bookID := uuid.New()
	catalogUC.EXPECT().
		AddBook(mock.Anything, mock.AnythingOfType("*usecase.AddBookInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.AddBookInput) (*entity.Book, error) {
			assert.Equal(t, "9780134190440", input.ISBN)
			assert.Equal(t, entity.CategoryTechnology, input.Category)
			assert.Equal(t, time.Date(2015, 10, 26, 0, 0, 0, 0, time.UTC), input.PublicationDate)

			return testBook(bookID), nil
		})

	body := `{"title":"The Go Programming Language","author":"Alan A. A. Donovan","isbn":"9780134190440","category":"technology","total_copies":3,"available_copies":2,"publication_date":"2015-10-26","pages":380}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/books", body)

	require.NoError(t, h.AddBook(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), bookID.String())
}

func TestBookHandler_AddBook_ValidationFailure(t *testing.T) {
	h := NewBookHandler(BookHandlerParams{
		CatalogUC: mockUC.NewMockCatalogUsecase(t),
		Logger:    newDiscardLogger(),
	})

	// Missing author, zero total copies.
	body := `{"title":"Untitled","isbn":"9780134190440","category":"technology","total_copies":0}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/books", body)

	require.NoError(t, h.AddBook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestBookHandler_AddBook_DuplicateISBN(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewBookHandler(BookHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	catalogUC.EXPECT().
		AddBook(mock.Anything, mock.AnythingOfType("*usecase.AddBookInput")).
		Return(nil, domainerrors.ErrISBNTaken)

	body := `{"title":"The Go Programming Language","author":"Alan A. A. Donovan","isbn":"9780134190440","category":"technology","total_copies":3}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/books", body)

	require.NoError(t, h.AddBook(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookHandler_ListBooks_WithFilter(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewBookHandler(BookHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	catalogUC.EXPECT().
		ListBooks(mock.Anything, &usecase.ListBooksInput{
			Search:   "go",
			Category: entity.CategoryTechnology,
		}).
		Return([]*entity.Book{testBook(uuid.New())}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/books?search=go&category=technology", "")

	require.NoError(t, h.ListBooks(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Go Programming Language")
}

func TestBookHandler_GetBook_Success(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewBookHandler(BookHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	bookID := uuid.New()
	catalogUC.EXPECT().GetBook(mock.Anything, bookID).Return(testBook(bookID), nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/books/"+bookID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(bookID.String())

	require.NoError(t, h.GetBook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "9780134190440")
}

func TestBookHandler_GetBook_InvalidID(t *testing.T) {
	h := NewBookHandler(BookHandlerParams{
		CatalogUC: mockUC.NewMockCatalogUsecase(t),
		Logger:    newDiscardLogger(),
	})

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/books/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetBook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookHandler_GetBook_NotFound(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewBookHandler(BookHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	bookID := uuid.New()
	catalogUC.EXPECT().GetBook(mock.Anything, bookID).Return(nil, domainerrors.ErrBookNotFound)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/books/"+bookID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(bookID.String())

	require.NoError(t, h.GetBook(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookHandler_Home(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewBookHandler(BookHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	catalogUC.EXPECT().HomeStats(mock.Anything).Return(&usecase.HomeStats{
		TotalBooks:     12,
		AvailableBooks: 9,
		TotalMembers:   57,
		ActiveLoans:    6,
	}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/", "")

	require.NoError(t, h.Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_books":12`)
	assert.Contains(t, rec.Body.String(), `"active_loans":6`)
}

func TestBookHandler_LibrarianDashboard(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewBookHandler(BookHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	catalogUC.EXPECT().LibrarianStats(mock.Anything).Return(&usecase.LibrarianStats{
		TotalBooks:     12,
		TotalCopies:    30,
		AvailableBooks: 9,
		ActiveLoans:    6,
		OverdueLoans:   3,
		TotalMembers:   57,
	}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/librarian", "")

	require.NoError(t, h.LibrarianDashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"overdue_loans":3`)
	assert.Contains(t, rec.Body.String(), `"total_copies":30`)
}
