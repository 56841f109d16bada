package handler

import (
	"log/slog"
	"net/http"
	"time"

	"libris/internal/delivery/http/response"
	"libris/internal/domain/entity"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// BookHandler holds dependencies for catalog-related handlers
type BookHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewBookHandler is the constructor for BookHandler
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// AddBookRequest represents the request body for adding a title to the catalog
type AddBookRequest struct {
	Title           string `json:"title" validate:"required,max=255"`
	Author          string `json:"author" validate:"required,max=255"`
	ISBN            string `json:"isbn" validate:"required,min=10,max=13"`
	Description     string `json:"description" validate:"omitempty,max=2000"`
	Category        string `json:"category" validate:"required"`
	TotalCopies     int    `json:"total_copies" validate:"required,min=1"`
	AvailableCopies int    `json:"available_copies" validate:"min=0"`
	PublicationDate string `json:"publication_date" validate:"omitempty,datetime=2006-01-02"`
	Pages           *int   `json:"pages" validate:"omitempty,gt=0"`
}

// AddBook handles adding a new title to the catalog. Librarian only.
func (h *BookHandler) AddBook(c echo.Context) error {
	var req AddBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddBookInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Description:     req.Description,
		Category:        entity.Category(req.Category),
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
		Pages:           req.Pages,
	}
	if req.PublicationDate != "" {
		publicationDate, err := time.Parse(dateLayout, req.PublicationDate)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "Invalid publication date")
		}
		input.PublicationDate = publicationDate
	}

	book, err := h.catalogUC.AddBook(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBookView(book))
}

// ListBooks handles browsing the catalog with an optional substring search
// and category filter.
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.catalogUC.ListBooks(c.Request().Context(), &usecase.ListBooksInput{
		Search:   c.QueryParam("search"),
		Category: entity.Category(c.QueryParam("category")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookViews(books))
}

// GetBook handles retrieving a single title by ID.
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book ID")
	}

	book, err := h.catalogUC.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookView(book))
}

// Home handles the public landing page counters.
func (h *BookHandler) Home(c echo.Context) error {
	stats, err := h.catalogUC.HomeStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{
		"total_books":     stats.TotalBooks,
		"available_books": stats.AvailableBooks,
		"total_members":   stats.TotalMembers,
		"active_loans":    stats.ActiveLoans,
	})
}

// LibrarianDashboard handles the librarian dashboard counters. Librarian only.
func (h *BookHandler) LibrarianDashboard(c echo.Context) error {
	stats, err := h.catalogUC.LibrarianStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{
		"total_books":     stats.TotalBooks,
		"total_copies":    stats.TotalCopies,
		"available_books": stats.AvailableBooks,
		"active_loans":    stats.ActiveLoans,
		"overdue_loans":   stats.OverdueLoans,
		"total_members":   stats.TotalMembers,
	})
}
