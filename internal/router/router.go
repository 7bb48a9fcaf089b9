package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"forumhub/internal/auth"
	"forumhub/internal/cache"
	"forumhub/internal/config"
	apperrors "forumhub/internal/errors"
	"forumhub/internal/handler"
	"forumhub/internal/middleware"
	"forumhub/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	counters *cache.Client,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// The frontend sends the session cookie cross-origin, so credentials must
	// be allowed and the origin list explicit.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Accepted uploads are public under their random names.
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	limited := middleware.RateLimit(counters, cfg.RateLimit, time.Duration(cfg.RateWindowSec)*time.Second)

	// Public routes
	api.POST("/register", authHandler.Register, limited)
	api.POST("/login", authHandler.Login, limited)
	api.POST("/logout", authHandler.Logout)

	// Admin routes: session cookie verified first, then the role gate.
	admin := api.Group("/admin",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "cookie:" + auth.SessionCookieName,
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				// Missing, invalid and expired cookies are all the same 401
				// to the client.
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Unauthorized"})
			},
		}),
		middleware.RequireRole(model.RoleAdmin),
	)

	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.Users)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
