package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "forumhub/internal/errors"
	"forumhub/internal/middleware"
	"forumhub/internal/model"
	"forumhub/internal/service"
)

// AdminHandler serves the role-restricted reporting endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// DashboardResponse is the admin dashboard payload.
type DashboardResponse struct {
	Message     string                 `json:"message"`
	Role        model.Role             `json:"role"`
	Stats       service.DashboardStats `json:"stats"`
	RecentUsers []RecentUserRow        `json:"recentUsers"`
}

// RecentUserRow is the trimmed user row shown in the dashboard's recent list.
type RecentUserRow struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

// Dashboard godoc
// @Summary Admin dashboard summary
// @Tags admin
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Unauthorized"})
	}

	stats, recent, err := h.adminService.Dashboard(c.Request().Context())
	if err != nil {
		status, body := apperrors.MapErrorToHTTP(err)
		return c.JSON(status, body)
	}

	rows := make([]RecentUserRow, 0, len(recent))
	for _, u := range recent {
		rows = append(rows, RecentUserRow{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		Message:     "Welcome to the admin dashboard.",
		Role:        identity.Role,
		Stats:       *stats,
		RecentUsers: rows,
	})
}

// Users godoc
// @Summary Full user roster, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		status, body := apperrors.MapErrorToHTTP(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, users)
}
