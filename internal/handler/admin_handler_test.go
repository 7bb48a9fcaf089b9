package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forumhub/internal/model"
	"forumhub/internal/service"
)

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Dashboard(ctx context.Context) (*service.DashboardStats, []model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*service.DashboardStats), args.Get(1).([]model.User), args.Error(2)
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func TestAdminHandler_UsersRowShape(t *testing.T) {
	photo := "/uploads/abc.png"
	roster := []model.User{
		{
			ID:               2,
			FirstName:        "Bob",
			LastName:         "Jones",
			Email:            "bob@example.com",
			PhoneNumber:      "01234567890",
			PasswordHash:     "$argon2id$...",
			Role:             model.RoleUser,
			ProfilePhotoPath: &photo,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		},
	}

	mockSvc := new(MockAdminService)
	mockSvc.On("ListUsers", mock.Anything).Return(roster, nil)

	e := newTestEcho()
	h := NewAdminHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Users(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	for _, field := range []string{"id", "first_name", "last_name", "email", "phone_number", "role", "profile_photo_path", "created_at"} {
		assert.Contains(t, body, `"`+field+`"`)
	}
	// Internal bookkeeping and the digest never reach the client.
	assert.NotContains(t, body, "updated_at")
	assert.NotContains(t, body, "argon2id")
	assert.NotContains(t, body, "password")

	mockSvc.AssertExpectations(t)
}
