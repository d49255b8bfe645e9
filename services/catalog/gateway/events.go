package gateway

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/events"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// CatalogGW publishes catalog events on the event bus
type CatalogGW struct {
	publisher events.Publisher
}

// NewCatalogGW creates a new catalog gateway
func NewCatalogGW(publisher events.Publisher) *CatalogGW {
	return &CatalogGW{publisher: publisher}
}

// PublishCategoryCreated announces a new category
func (g *CatalogGW) PublishCategoryCreated(ctx context.Context, event *models.CategoryCreatedEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectCategoryCreated, event)
}
