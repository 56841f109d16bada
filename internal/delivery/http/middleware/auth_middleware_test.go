package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"libris/internal/domain/entity"
	"libris/internal/domain/service"
	mockSvc "libris/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()

	tokenSvc.EXPECT().
		ValidateAccessToken("valid-token").
		Return(&service.Claims{
			UserID: userID,
			Roles:  []string{"member", "librarian"},
			Type:   "access",
		}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer valid-token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	gotUserID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotUserID)

	roles, ok := GetRoles(c)
	require.True(t, ok)
	assert.True(t, roles.Contains(entity.RoleMember))
	assert.True(t, roles.Contains(entity.RoleLibrarian))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_REQUIRED")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("expired-token").
		Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext(t, "Bearer expired-token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	t.Run("role present", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(contextKeyRoles, entity.Roles{entity.RoleMember, entity.RoleLibrarian})

		err := m.RequireRole(entity.RoleLibrarian)(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set(contextKeyRoles, entity.Roles{entity.RoleMember})

		err := m.RequireRole(entity.RoleLibrarian)(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "ACCESS_DENIED")
	})

	t.Run("no role information", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")

		err := m.RequireRole(entity.RoleLibrarian)(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
