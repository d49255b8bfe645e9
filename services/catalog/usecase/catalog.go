package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
)

const maxCategoryNameLength = 100

// ListCategories returns every service category
func (uc *CatalogUC) ListCategories(ctx context.Context) ([]*models.ServiceCategory, error) {
	return uc.catalogRepo.ListCategories(ctx)
}

// CreateCategory adds a category. Only admins may do this.
func (uc *CatalogUC) CreateCategory(ctx context.Context, actor models.Actor, name, description string) (*models.ServiceCategory, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrUnauthorized
	}

	name = utils.CleanText(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", models.ErrInvalidInput)
	}
	if len(name) > maxCategoryNameLength {
		return nil, fmt.Errorf("%w: category name is too long", models.ErrInvalidInput)
	}

	category := &models.ServiceCategory{
		ID:          uuid.NewString(),
		Name:        name,
		Description: utils.CleanText(description),
		CreatedAt:   models.Now(),
	}
	if err := uc.catalogRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	logger.Info("Service category created",
		logger.String("category_id", category.ID),
		logger.String("name", category.Name),
		logger.Actor(actor))

	if err := uc.catalogGW.PublishCategoryCreated(ctx, &models.CategoryCreatedEvent{Category: *category}); err != nil {
		logger.Warn("Failed to publish category created event",
			logger.String("category_id", category.ID),
			logger.Err(err))
	}
	return category, nil
}
