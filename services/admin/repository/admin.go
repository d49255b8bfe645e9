package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// AdminRepo implements admin.AdminRepo on SQL
type AdminRepo struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sqlx.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

const dashboardQuery = `
	SELECT
		(SELECT COUNT(*) FROM users) AS total_users,
		(SELECT COUNT(*) FROM helpers) AS total_helpers,
		(SELECT COUNT(*) FROM helpers WHERE approved = FALSE) AS pending_helpers,
		(SELECT COUNT(*) FROM service_requests) AS total_requests
`

// GetDashboardCounts returns the headline counts in one round trip
func (r *AdminRepo) GetDashboardCounts(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := r.db.GetContext(ctx, &stats, dashboardQuery); err != nil {
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}
	return &stats, nil
}
