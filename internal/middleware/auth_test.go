package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/auth"
	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func issueToken(t *testing.T, role models.UserRole) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, &models.User{ID: 1, Role: role}, time.Hour)
	require.NoError(t, err)
	return token
}

func runGuarded(t *testing.T, authHeader string, roles ...models.UserRole) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"data": "secret"})
	}

	wrapped := JWTAuth(testSecret)(handler)
	if len(roles) > 0 {
		wrapped = JWTAuth(testSecret)(RequireRole(roles...)(handler))
	}
	return rec, wrapped(c)
}

func TestJWTAuth_MissingToken(t *testing.T) {
	rec, err := runGuarded(t, "")

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Empty(t, rec.Body.String(), "no data on deny")
}

func TestJWTAuth_MalformedToken(t *testing.T) {
	_, err := runGuarded(t, "Bearer not-a-jwt")

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	token, err := auth.IssueToken("other-secret", &models.User{ID: 1, Role: models.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	_, gerr := runGuarded(t, "Bearer "+token)

	he, ok := gerr.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token, err := auth.IssueToken(testSecret, &models.User{ID: 1, Role: models.RoleAdmin}, -time.Minute)
	require.NoError(t, err)

	_, gerr := runGuarded(t, "Bearer "+token)

	he, ok := gerr.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireRole_NonAdminForbidden(t *testing.T) {
	token := issueToken(t, models.RoleStaff)

	rec, err := runGuarded(t, "Bearer "+token, models.RoleAdmin)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
	assert.Empty(t, rec.Body.String(), "no data on deny")
}

func TestRequireRole_AdminPermitted(t *testing.T) {
	token := issueToken(t, models.RoleAdmin)

	rec, err := runGuarded(t, "Bearer "+token, models.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuth_SetsIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, models.RoleAdmin))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uint
	var gotRole models.UserRole
	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		gotID, _ = UserID(c)
		gotRole, _ = c.Get(ContextRole).(models.UserRole)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, uint(1), gotID)
	assert.Equal(t, models.RoleAdmin, gotRole)
}
