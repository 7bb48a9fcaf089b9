package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"forumhub/internal/auth"
	apperrors "forumhub/internal/errors"
	"forumhub/internal/model"
	"forumhub/internal/service"
	"forumhub/internal/upload"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
	uploads     *upload.Store
	cookies     *auth.CookieManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, uploads *upload.Store, cookies *auth.CookieManager) *AuthHandler {
	return &AuthHandler{authService: authService, uploads: uploads, cookies: cookies}
}

// RegisterRequest represents the multipart registration form.
type RegisterRequest struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"required,min=11"`
	Password  string `form:"password" validate:"required,min=8"`
}

// LoginRequest represents a login request. The email is deliberately not
// syntax-checked here: a malformed address cannot match any account, so it
// takes the same credential failure path as a wrong password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the identity fields the client persists. The
// password digest is never part of it.
type LoginResponse struct {
	ID    uint       `json:"id"`
	Fname string     `json:"fname"`
	Lname string     `json:"lname"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	Photo *string    `json:"photo"`
}

// SuccessResponse acknowledges a state-changing request.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Register godoc
// @Summary Register a new forum account
// @Tags auth
// @Accept mpfd
// @Produce json
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param email formData string true "Email address"
// @Param phone formData string true "Phone number, at least 11 characters"
// @Param password formData string true "Password, at least 8 characters"
// @Param photo formData file false "Profile photo (JPG or PNG)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	// The photo is optional; when present it must pass validation before any
	// user row is created.
	var photoPath *string
	fh, err := c.FormFile("photo")
	switch {
	case err == nil:
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Invalid file upload."})
		}
		defer src.Close()

		path, err := h.uploads.Save(src, fh.Size)
		if err != nil {
			status, body := apperrors.MapErrorToHTTP(err)
			return c.JSON(status, body)
		}
		photoPath = &path
	case errors.Is(err, http.ErrMissingFile):
		// no photo supplied
	default:
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Invalid file upload."})
	}

	_, err = h.authService.Register(c.Request().Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		PhotoPath: photoPath,
	})
	if err != nil {
		status, body := apperrors.MapErrorToHTTP(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "User registered."})
}

// Login godoc
// @Summary Log in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		status, body := apperrors.MapErrorToHTTP(err)
		return c.JSON(status, body)
	}

	c.SetCookie(h.cookies.SessionCookie(token))

	return c.JSON(http.StatusOK, LoginResponse{
		ID:    user.ID,
		Fname: user.FirstName,
		Lname: user.LastName,
		Email: user.Email,
		Role:  user.Role,
		Photo: user.ProfilePhotoPath,
	})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Tokens are not tracked server-side; clearing the cookie is the whole
	// operation, so a second logout without a cookie succeeds the same way.
	c.SetCookie(h.cookies.ClearSessionCookie())
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Logged out."})
}
