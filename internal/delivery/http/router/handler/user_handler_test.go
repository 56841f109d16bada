package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"libris/internal/delivery/http/validator"
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

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMember(userID uuid.UUID) *entity.User {
	return &entity.User{
		ID:       userID,
		Username: "reader42",
		Email:    "reader42@example.com",
		Profile: &entity.UserProfile{
			UserID:            userID,
			LibraryCardNumber: "LIB000042",
			MembershipDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUserHandler_Register_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userID := uuid.New()
	userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username:        "reader42",
			Email:           "reader42@example.com",
			Password:        "StrongPhrase123",
			PasswordConfirm: "StrongPhrase123",
		}).
		Return(&usecase.RegisterOutput{User: testMember(userID)}, nil)

	body := `{"username":"reader42","email":"reader42@example.com","password":"StrongPhrase123","password_confirm":"StrongPhrase123"}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "LIB000042")
	assert.NotContains(t, rec.Body.String(), "StrongPhrase123")
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	h := NewUserHandler(UserHandlerParams{
		UserUC: mockUC.NewMockUserUsecase(t),
		Logger: newDiscardLogger(),
	})

	// Username too short, email malformed.
	body := `{"username":"ab","email":"not-an-email","password":"x","password_confirm":"x"}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUserHandler_Register_UsernameTaken(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUsernameTaken)

	body := `{"username":"reader42","email":"reader42@example.com","password":"StrongPhrase123","password_confirm":"StrongPhrase123"}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserHandler_Login_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "reader42", Password: "StrongPhrase123"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User:         testMember(uuid.New()),
		}, nil)

	body := `{"username":"reader42","password":"StrongPhrase123"}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.Contains(t, rec.Body.String(), "refresh-token")
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"username":"reader42","password":"wrong"}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_RefreshToken_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userUC.EXPECT().
		RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "fresh-access-token"}, nil)

	body := `{"refresh_token":"refresh-token"}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/refresh", body)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh-access-token")
}

func TestUserHandler_Logout_Success(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	userUC.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh-token"}).
		Return(nil)

	body := `{"refresh_token":"refresh-token"}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/auth/logout", body)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
