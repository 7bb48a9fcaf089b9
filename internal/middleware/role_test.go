package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forumhub/internal/auth"
	apperrors "forumhub/internal/errors"
	"forumhub/internal/model"
)

const testSecret = "test-secret"

// newAdminEcho mirrors the router's admin group wiring: cookie-based jwt
// verification followed by the role gate.
func newAdminEcho() *echo.Echo {
	e := echo.New()
	admin := e.Group("/api/admin",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(testSecret),
			TokenLookup: "cookie:" + auth.SessionCookieName,
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Unauthorized"})
			},
		}),
		RequireRole(model.RoleAdmin),
	)
	admin.GET("/ping", func(c echo.Context) error {
		identity := IdentityFromContext(c)
		return c.JSON(http.StatusOK, echo.Map{"user_id": identity.UserID, "role": identity.Role})
	})
	return e
}

func expiredToken(t *testing.T, role model.Role) string {
	t.Helper()
	issued := time.Now().Add(-25 * time.Hour)
	claims := &auth.Claims{
		UserID: 1,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "stale",
			ExpiresAt: jwt.NewNumericDate(issued.Add(auth.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestRequireRole_AdminGate(t *testing.T) {
	svc := auth.NewJWTService(testSecret)

	adminToken, err := svc.GenerateSessionToken(1, model.RoleAdmin)
	require.NoError(t, err)
	userToken, err := svc.GenerateSessionToken(2, model.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{"no session", "", http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"expired admin session", expiredToken(t, model.RoleAdmin), http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"valid non-admin session", userToken, http.StatusForbidden, `{"error":"Forbidden: Admins only."}`},
		{"valid admin session", adminToken, http.StatusOK, ""},
	}

	e := newAdminEcho()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireRole_ExposesIdentity(t *testing.T) {
	svc := auth.NewJWTService(testSecret)
	token, err := svc.GenerateSessionToken(7, model.RoleAdmin)
	require.NoError(t, err)

	e := newAdminEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"role":"admin"}`, rec.Body.String())
}
