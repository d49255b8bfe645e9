package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// schema is portable across postgres and sqlite3
var schema = []string{
	`CREATE TABLE IF NOT EXISTS service_categories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		full_name  TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		phone      TEXT NOT NULL DEFAULT '',
		address    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS helpers (
		id          TEXT PRIMARY KEY,
		full_name   TEXT NOT NULL,
		email       TEXT NOT NULL UNIQUE,
		phone       TEXT NOT NULL DEFAULT '',
		category_id TEXT NOT NULL REFERENCES service_categories (id),
		latitude    DOUBLE PRECISION,
		longitude   DOUBLE PRECISION,
		geohash     TEXT,
		available   BOOLEAN NOT NULL DEFAULT TRUE,
		approved    BOOLEAN NOT NULL DEFAULT FALSE,
		reserved_request_id TEXT,
		created_at  TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_helpers_eligible ON helpers (category_id, approved, available, created_at, id)`,
	`CREATE INDEX IF NOT EXISTS idx_helpers_geohash ON helpers (geohash)`,
	`CREATE TABLE IF NOT EXISTS service_requests (
		id           TEXT PRIMARY KEY,
		requester_id TEXT NOT NULL REFERENCES users (id),
		category_id  TEXT NOT NULL REFERENCES service_categories (id),
		helper_id    TEXT REFERENCES helpers (id),
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		latitude     DOUBLE PRECISION,
		longitude    DOUBLE PRECISION,
		address      TEXT NOT NULL DEFAULT '',
		distance_km  DOUBLE PRECISION,
		status       TEXT NOT NULL,
		created_at   TIMESTAMP NOT NULL,
		updated_at   TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_requester ON service_requests (requester_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_helper ON service_requests (helper_id, created_at)`,
}

// DefaultCategories are seeded by Migrate when missing
var DefaultCategories = []models.ServiceCategory{
	{Name: "Plumber", Description: "Fixing pipes, leaks, drainage issues"},
	{Name: "Electrician", Description: "Electrical repairs, wiring, appliance installation"},
	{Name: "Car Mechanic", Description: "Car repair and maintenance services"},
	{Name: "Bike Mechanic", Description: "Bike repair and maintenance services"},
	{Name: "AC Repair", Description: "Air conditioner repair and maintenance"},
	{Name: "Carpenter", Description: "Woodwork, furniture repair"},
	{Name: "Painter", Description: "Painting services for walls and furniture"},
	{Name: "Cleaning", Description: "Home and office cleaning services"},
}

// Migrate creates the schema and seeds the default categories in one transaction
func Migrate(ctx context.Context, db *sqlx.DB) error {
	return WithTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}

		seed := tx.Rebind(`INSERT INTO service_categories (id, name, description, created_at)
			VALUES (?, ?, ?, ?) ON CONFLICT (name) DO NOTHING`)
		now := models.Now()
		for _, category := range DefaultCategories {
			if _, err := tx.ExecContext(ctx, seed, uuid.NewString(), category.Name, category.Description, now); err != nil {
				return fmt.Errorf("failed to seed category %s: %w", category.Name, err)
			}
		}
		return nil
	})
}
