package catalog

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nearfix/services/catalog CatalogRepo

// CatalogRepo defines data access for service categories
type CatalogRepo interface {
	ListCategories(ctx context.Context) ([]*models.ServiceCategory, error)
	GetCategory(ctx context.Context, id string) (*models.ServiceCategory, error)
	CreateCategory(ctx context.Context, category *models.ServiceCategory) error
}
