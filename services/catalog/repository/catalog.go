package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/database"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// CatalogRepo implements catalog.CatalogRepo on SQL with a Redis read-through cache
type CatalogRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewCatalogRepository creates a new catalog repository. redisClient may be nil.
func NewCatalogRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *CatalogRepo {
	return &CatalogRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

func (r *CatalogRepo) cacheTTL() time.Duration {
	return time.Duration(r.cfg.Cache.TTLSeconds) * time.Second
}

// ListCategories returns every category ordered by name
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]*models.ServiceCategory, error) {
	if r.redisClient != nil {
		var cached []*models.ServiceCategory
		err := r.redisClient.GetJSON(ctx, constants.KeyCategories, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, database.ErrCacheMiss) {
			logger.Warn("Category cache read failed", logger.Err(err))
		}
	}

	categories := []*models.ServiceCategory{}
	query := `SELECT id, name, description, created_at FROM service_categories ORDER BY name ASC`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if r.redisClient != nil && r.cfg.Cache.TTLSeconds > 0 {
		if err := r.redisClient.SetJSON(ctx, constants.KeyCategories, categories, r.cacheTTL()); err != nil {
			logger.Warn("Category cache write failed", logger.Err(err))
		}
	}
	return categories, nil
}

// GetCategory returns the category with id
func (r *CatalogRepo) GetCategory(ctx context.Context, id string) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	query := r.db.Rebind(`SELECT id, name, description, created_at FROM service_categories WHERE id = ?`)
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// CreateCategory inserts category and drops the cached listing
func (r *CatalogRepo) CreateCategory(ctx context.Context, category *models.ServiceCategory) error {
	query := r.db.Rebind(`INSERT INTO service_categories (id, name, description, created_at) VALUES (?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Description, category.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("category %q: %w", category.Name, models.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Delete(ctx, constants.KeyCategories); err != nil {
			logger.Warn("Category cache invalidation failed", logger.Err(err))
		}
	}
	return nil
}
