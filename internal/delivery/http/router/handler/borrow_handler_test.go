package handler

import (
	"net/http"
	"testing"
	"time"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	mockUC "libris/internal/mocks/usecase"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type borrowHandlerFixtures struct {
	handler     *BorrowHandler
	borrowingUC *mockUC.MockBorrowingUsecase
	userUC      *mockUC.MockUserUsecase
}

func createTestBorrowHandler(t *testing.T) borrowHandlerFixtures {
	borrowingUC := mockUC.NewMockBorrowingUsecase(t)
	userUC := mockUC.NewMockUserUsecase(t)

	h := NewBorrowHandler(BorrowHandlerParams{
		BorrowingUC: borrowingUC,
		UserUC:      userUC,
		Logger:      newDiscardLogger(),
	})

	return borrowHandlerFixtures{
		handler:     h,
		borrowingUC: borrowingUC,
		userUC:      userUC,
	}
}

func authenticate(c echo.Context, userID uuid.UUID) {
	c.Set("userID", userID)
	c.Set("roles", entity.Roles{entity.RoleMember})
}

func testLoan(userID, bookID uuid.UUID) *entity.BorrowRecord {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	return &entity.BorrowRecord{
		ID:         uuid.New(),
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: now,
		DueDate:    now.AddDate(0, 0, 14),
		Status:     entity.StatusBorrowed,
		Book:       testBook(bookID),
	}
}

func TestBorrowHandler_BorrowBook_Success(t *testing.T) {
	fx := createTestBorrowHandler(t)

	userID := uuid.New()
	bookID := uuid.New()
	fx.borrowingUC.EXPECT().
		BorrowBook(mock.Anything, userID, bookID).
		Return(testLoan(userID, bookID), nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/borrow/"+bookID.String(), "")
	c.SetParamNames("bookId")
	c.SetParamValues(bookID.String())
	authenticate(c, userID)

	require.NoError(t, fx.handler.BorrowBook(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"borrowed"`)
	assert.Contains(t, rec.Body.String(), `"due_date":"2026-08-15"`)
}

func TestBorrowHandler_BorrowBook_NotAuthenticated(t *testing.T) {
	fx := createTestBorrowHandler(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/borrow/"+uuid.NewString(), "")

	require.NoError(t, fx.handler.BorrowBook(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBorrowHandler_BorrowBook_InvalidBookID(t *testing.T) {
	fx := createTestBorrowHandler(t)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/borrow/not-a-uuid", "")
	c.SetParamNames("bookId")
	c.SetParamValues("not-a-uuid")
	authenticate(c, uuid.New())

	require.NoError(t, fx.handler.BorrowBook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBorrowHandler_BorrowBook_NoCopiesAvailable(t *testing.T) {
	fx := createTestBorrowHandler(t)

	userID := uuid.New()
	bookID := uuid.New()
	fx.borrowingUC.EXPECT().
		BorrowBook(mock.Anything, userID, bookID).
		Return(nil, domainerrors.ErrBookNotAvailable)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/borrow/"+bookID.String(), "")
	c.SetParamNames("bookId")
	c.SetParamValues(bookID.String())
	authenticate(c, userID)

	require.NoError(t, fx.handler.BorrowBook(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBorrowHandler_ReturnBook_Success(t *testing.T) {
	fx := createTestBorrowHandler(t)

	userID := uuid.New()
	loan := testLoan(userID, uuid.New())
	returnDate := time.Date(2026, 8, 10, 16, 0, 0, 0, time.UTC)
	loan.MarkReturned(returnDate)

	fx.borrowingUC.EXPECT().
		ReturnBook(mock.Anything, userID, loan.ID).
		Return(loan, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/return/"+loan.ID.String(), "")
	c.SetParamNames("borrowId")
	c.SetParamValues(loan.ID.String())
	authenticate(c, userID)

	require.NoError(t, fx.handler.ReturnBook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"returned"`)
	assert.Contains(t, rec.Body.String(), `"return_date":"2026-08-10"`)
}

func TestBorrowHandler_ReturnBook_NotOwner(t *testing.T) {
	fx := createTestBorrowHandler(t)

	userID := uuid.New()
	borrowID := uuid.New()
	fx.borrowingUC.EXPECT().
		ReturnBook(mock.Anything, userID, borrowID).
		Return(nil, domainerrors.ErrNotRecordOwner)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/return/"+borrowID.String(), "")
	c.SetParamNames("borrowId")
	c.SetParamValues(borrowID.String())
	authenticate(c, userID)

	require.NoError(t, fx.handler.ReturnBook(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBorrowHandler_Dashboard_Success(t *testing.T) {
	fx := createTestBorrowHandler(t)

	userID := uuid.New()
	loan := testLoan(userID, uuid.New())
	fx.borrowingUC.EXPECT().
		Dashboard(mock.Anything, userID).
		Return(&usecase.DashboardOutput{
			User:         testMember(userID),
			Records:      []*entity.BorrowRecord{loan},
			ActiveLoans:  1,
			OverdueLoans: 0,
		}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/dashboard", "")
	authenticate(c, userID)

	require.NoError(t, fx.handler.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"active_loans":1`)
	assert.Contains(t, rec.Body.String(), "LIB000042")
}

func TestBorrowHandler_LibraryCard_Success(t *testing.T) {
	fx := createTestBorrowHandler(t)

	userID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	fx.userUC.EXPECT().
		LibraryCardQR(mock.Anything, userID).
		Return(&usecase.LibraryCardOutput{CardNumber: "LIB000042", PNG: png}, nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/dashboard/card", "")
	authenticate(c, userID)

	require.NoError(t, fx.handler.LibraryCard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "LIB000042", rec.Header().Get("X-Card-Number"))
	assert.Equal(t, png, rec.Body.Bytes())
}
