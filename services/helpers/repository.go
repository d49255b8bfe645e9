package helpers

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nearfix/services/helpers HelperRepo

// HelperRepo is the helper directory
type HelperRepo interface {
	CreateHelper(ctx context.Context, helper *models.Helper) error
	GetHelperByID(ctx context.Context, id string) (*models.Helper, error)
	UpdateLocation(ctx context.Context, id string, location models.Coordinate, geohash string) error
	ToggleAvailability(ctx context.Context, id string) (bool, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	ApproveHelper(ctx context.Context, id string) (*models.Helper, error)
	ListHelpers(ctx context.Context, filter models.HelperFilter) ([]*models.Helper, error)

	// ListEligibleHelpers returns approved, available helpers of query.CategoryID
	// ordered by creation time then id, so matching ties are reproducible
	ListEligibleHelpers(ctx context.Context, query models.HelperQuery) ([]*models.Helper, error)
}
