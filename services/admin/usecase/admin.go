package usecase

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/services/admin"
	"github.com/piresc/nearfix/services/requests"
)

const recentRequestCount = 10

// AdminUC implements admin.AdminUC
type AdminUC struct {
	adminRepo   admin.AdminRepo
	requestRepo requests.RequestRepo
}

// NewAdminUC creates a new admin use case
func NewAdminUC(adminRepo admin.AdminRepo, requestRepo requests.RequestRepo) *AdminUC {
	return &AdminUC{
		adminRepo:   adminRepo,
		requestRepo: requestRepo,
	}
}

// GetDashboardStats returns headline counts plus the most recent requests
func (uc *AdminUC) GetDashboardStats(ctx context.Context, actor models.Actor) (*models.DashboardStats, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrUnauthorized
	}

	stats, err := uc.adminRepo.GetDashboardCounts(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.requestRepo.ListRequests(ctx, models.RequestFilter{Limit: recentRequestCount})
	if err != nil {
		return nil, err
	}
	stats.RecentRequests = recent
	return stats, nil
}
