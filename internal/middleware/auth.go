package middleware

import (
	"net/http"
	"strings"

	"github.com/Kingsavannah44/savannah-events-api/internal/auth"
	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/labstack/echo/v4"
)

// Context keys populated by JWTAuth.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// JWTAuth validates the Bearer session token and stores the caller's identity
// on the request context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}

			identity, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}

			c.Set(ContextUserID, identity.UserID)
			c.Set(ContextRole, identity.Role)
			return next(c)
		}
	}
}

// RequireRole rejects authenticated callers whose role is not in the allowed
// set. Must run after JWTAuth.
func RequireRole(roles ...models.UserRole) echo.MiddlewareFunc {
	allowed := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(models.UserRole)
			if !ok || !allowed[role] {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated user's id set by JWTAuth.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(ContextUserID).(uint)
	return id, ok
}
