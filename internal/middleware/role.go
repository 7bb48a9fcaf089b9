package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"forumhub/internal/auth"
	apperrors "forumhub/internal/errors"
	"forumhub/internal/model"
)

// identityKey is where the verified session claims live in the echo context.
const identityKey = "identity"

// RequireRole gates a route group on the role carried in the verified session
// token. It runs after the jwt middleware, which stores the parsed token under
// "user"; a valid session with the wrong role gets 403, anything less a 401.
func RequireRole(required model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok || token == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Unauthorized"})
			}

			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Unauthorized"})
			}

			if claims.Role != required {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{Error: "Forbidden: Admins only."})
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// IdentityFromContext returns the verified session claims attached by
// RequireRole, or nil when the request never passed the gate.
func IdentityFromContext(c echo.Context) *auth.Claims {
	claims, _ := c.Get(identityKey).(*auth.Claims)
	return claims
}
