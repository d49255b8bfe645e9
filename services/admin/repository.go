package admin

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nearfix/services/admin AdminRepo

// AdminRepo reads marketplace-wide aggregates
type AdminRepo interface {
	GetDashboardCounts(ctx context.Context) (*models.DashboardStats, error)
}
