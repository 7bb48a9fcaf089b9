package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"forumhub/internal/cache"
	"forumhub/internal/model"
	"forumhub/internal/repository"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
	recentLimit   = 5
)

// DashboardStats summarises the user base for the admin dashboard.
type DashboardStats struct {
	TotalUsers int64 `json:"totalUsers"`
	AdminCount int64 `json:"adminCount"`
	UserCount  int64 `json:"userCount"`
}

// AdminService exposes the role-restricted reporting operations.
type AdminService interface {
	Dashboard(ctx context.Context) (*DashboardStats, []model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type adminService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewAdminService builds an AdminService with repository and cache.
func NewAdminService(users repository.UserRepository, cache *cache.Client) AdminService {
	return &adminService{users: users, cache: cache}
}

// Dashboard returns aggregate counts plus the newest registrations. The
// counts ride a short cache; the recent list is always read fresh.
func (s *adminService) Dashboard(ctx context.Context) (*DashboardStats, []model.User, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return nil, nil, err
	}

	recent, err := s.users.Recent(ctx, recentLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("recent users: %w", err)
	}

	return stats, recent, nil
}

func (s *adminService) stats(ctx context.Context) (*DashboardStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached DashboardStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	admins, err := s.users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	regular, err := s.users.CountByRole(ctx, model.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("count regular users: %w", err)
	}

	stats := &DashboardStats{TotalUsers: total, AdminCount: admins, UserCount: regular}
	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}

	return stats, nil
}

// ListUsers returns the full roster, newest first.
func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
