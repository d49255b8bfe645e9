package catalog

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nearfix/services/catalog CatalogGW

// CatalogGW publishes catalog events
type CatalogGW interface {
	PublishCategoryCreated(ctx context.Context, event *models.CategoryCreatedEvent) error
}
