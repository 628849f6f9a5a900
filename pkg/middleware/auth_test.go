package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

func runAuth(t *testing.T, mw *AuthMiddleware, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/equipment", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	called := false
	handler := mw.Auth(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(ctx))
	return rec, called
}

func TestAuthPopulatesContext(t *testing.T) {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(jwtSvc, zap.NewNop())

	userID := uuid.New()
	companyID := uuid.New()
	token, err := jwtSvc.GenerateToken(userID, "user@example.com", companyID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/equipment", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	handler := mw.Auth(func(c echo.Context) error {
		gotUser, err := utils.GetUserIDFromCtx(c.Request().Context())
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)

		gotCompany, err := utils.GetCompanyIDFromCtx(c.Request().Context())
		require.NoError(t, err)
		assert.Equal(t, companyID, gotCompany)

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(service.NewJWTService("test-secret", time.Hour, zap.NewNop()), zap.NewNop())

	rec, called := runAuth(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMalformedHeader(t *testing.T) {
	mw := NewAuthMiddleware(service.NewJWTService("test-secret", time.Hour, zap.NewNop()), zap.NewNop())

	rec, called := runAuth(t, mw, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthBadToken(t *testing.T) {
	mw := NewAuthMiddleware(service.NewJWTService("test-secret", time.Hour, zap.NewNop()), zap.NewNop())

	rec, called := runAuth(t, mw, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthWrongSecret(t *testing.T) {
	issuer := service.NewJWTService("other-secret", time.Hour, zap.NewNop())
	mw := NewAuthMiddleware(service.NewJWTService("test-secret", time.Hour, zap.NewNop()), zap.NewNop())

	token, err := issuer.GenerateToken(uuid.New(), "user@example.com", uuid.New())
	require.NoError(t, err)

	rec, called := runAuth(t, mw, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
