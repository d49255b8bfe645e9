package admin

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nearfix/services/admin AdminUC

// AdminUC defines the admin dashboard use cases
type AdminUC interface {
	GetDashboardStats(ctx context.Context, actor models.Actor) (*models.DashboardStats, error)
}
