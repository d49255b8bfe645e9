package catalog

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nearfix/services/catalog CatalogUC

// CatalogUC defines the service category use cases
type CatalogUC interface {
	ListCategories(ctx context.Context) ([]*models.ServiceCategory, error)
	CreateCategory(ctx context.Context, actor models.Actor, name, description string) (*models.ServiceCategory, error)
}
