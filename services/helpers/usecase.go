package helpers

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nearfix/services/helpers HelperUC

// HelperUC defines the helper account use cases
type HelperUC interface {
	RegisterHelper(ctx context.Context, helper *models.Helper) error
	GetHelper(ctx context.Context, id string) (*models.Helper, error)
	UpdateLocation(ctx context.Context, actor models.Actor, id string, location models.Coordinate) (*models.Helper, error)
	ToggleAvailability(ctx context.Context, actor models.Actor, id string) (bool, error)
	SetAvailability(ctx context.Context, actor models.Actor, id string, available bool) error
	ApproveHelper(ctx context.Context, actor models.Actor, id string) (*models.Helper, error)
	ListHelpers(ctx context.Context, actor models.Actor, filter models.HelperFilter) ([]*models.Helper, error)
}
