package handler

import (
	"log/slog"
	"net/http"

	"libris/internal/delivery/http/middleware"
	"libris/internal/delivery/http/response"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BorrowHandlerParams holds dependencies for BorrowHandler, injected by Fx.
type BorrowHandlerParams struct {
	fx.In

	BorrowingUC usecase.BorrowingUsecase
	UserUC      usecase.UserUsecase
	Logger      *slog.Logger
}

// BorrowHandler holds dependencies for loan-related handlers
type BorrowHandler struct {
	borrowingUC usecase.BorrowingUsecase
	userUC      usecase.UserUsecase
	logger      *slog.Logger
}

// NewBorrowHandler is the constructor for BorrowHandler
func NewBorrowHandler(params BorrowHandlerParams) *BorrowHandler {
	return &BorrowHandler{
		borrowingUC: params.BorrowingUC,
		userUC:      params.UserUC,
		logger:      params.Logger,
	}
}

type dashboardResponse struct {
	User         *userView     `json:"user"`
	Records      []*borrowView `json:"records"`
	ActiveLoans  int           `json:"active_loans"`
	OverdueLoans int           `json:"overdue_loans"`
}

// BorrowBook handles taking a copy of a title off the shelf.
func (h *BorrowHandler) BorrowBook(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid book ID")
	}

	record, err := h.borrowingUC.BorrowBook(c.Request().Context(), userID, bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBorrowView(record))
}

// ReturnBook handles putting a borrowed copy back on the shelf.
func (h *BorrowHandler) ReturnBook(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	borrowID, err := uuid.Parse(c.Param("borrowId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid borrow record ID")
	}

	record, err := h.borrowingUC.ReturnBook(c.Request().Context(), userID, borrowID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBorrowView(record))
}

// Dashboard handles the member's borrowing overview.
func (h *BorrowHandler) Dashboard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.borrowingUC.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboardResponse{
		User:         newUserView(output.User),
		Records:      newBorrowViews(output.Records),
		ActiveLoans:  output.ActiveLoans,
		OverdueLoans: output.OverdueLoans,
	})
}

// LibraryCard renders the member's library card QR code as a PNG image.
func (h *BorrowHandler) LibraryCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	card, err := h.userUC.LibraryCardQR(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Card-Number", card.CardNumber)

	return c.Blob(http.StatusOK, "image/png", card.PNG)
}
