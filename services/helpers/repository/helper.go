package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	nr "github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/nearfix/internal/pkg/database"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/pkg/newrelic"
	"github.com/piresc/nearfix/internal/utils"
)

// CreateHelper inserts helper. A taken email gives models.ErrAlreadyExists.
func (r *HelperRepo) CreateHelper(ctx context.Context, helper *models.Helper) error {
	lat, lng, hash := nullableLocation(helper.Location, helper.Geohash)
	query := r.db.Rebind(`
		INSERT INTO helpers (id, full_name, email, phone, category_id, latitude, longitude, geohash, available, approved, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		helper.ID, helper.FullName, helper.Email, helper.Phone, helper.CategoryID,
		lat, lng, hash,
		helper.Available, helper.Approved, helper.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", helper.Email, models.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create helper: %w", err)
	}
	return nil
}

// GetHelperByID retrieves a helper by id
func (r *HelperRepo) GetHelperByID(ctx context.Context, id string) (*models.Helper, error) {
	var row helperRow
	query := r.db.Rebind(`SELECT ` + helperColumns + ` FROM helpers WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("helper %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get helper: %w", err)
	}
	return row.toModel(), nil
}

// UpdateLocation stores a new location and its geohash
func (r *HelperRepo) UpdateLocation(ctx context.Context, id string, location models.Coordinate, geohash string) error {
	query := r.db.Rebind(`UPDATE helpers SET latitude = ?, longitude = ?, geohash = ? WHERE id = ?`)
	result, err := r.db.ExecContext(ctx, query, location.Latitude, location.Longitude, geohash, id)
	if err != nil {
		return fmt.Errorf("failed to update helper location: %w", err)
	}
	return expectOneRow(result, id)
}

// ToggleAvailability flips available in one statement and returns the new value
func (r *HelperRepo) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	var available bool
	query := r.db.Rebind(`UPDATE helpers SET available = NOT available WHERE id = ? RETURNING available`)
	if err := r.db.QueryRowxContext(ctx, query, id).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("helper %s: %w", id, models.ErrNotFound)
		}
		return false, fmt.Errorf("failed to toggle availability: %w", err)
	}
	return available, nil
}

// SetAvailability sets available to the given value
func (r *HelperRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	query := r.db.Rebind(`UPDATE helpers SET available = ? WHERE id = ?`)
	result, err := r.db.ExecContext(ctx, query, available, id)
	if err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}
	return expectOneRow(result, id)
}

// ApproveHelper opens the eligibility gate and returns the updated helper
func (r *HelperRepo) ApproveHelper(ctx context.Context, id string) (*models.Helper, error) {
	var row helperRow
	query := r.db.Rebind(`UPDATE helpers SET approved = TRUE WHERE id = ? RETURNING ` + helperColumns)
	if err := r.db.QueryRowxContext(ctx, query, id).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("helper %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to approve helper: %w", err)
	}
	return row.toModel(), nil
}

// ListHelpers returns helpers newest first, optionally filtered by approval
func (r *HelperRepo) ListHelpers(ctx context.Context, filter models.HelperFilter) ([]*models.Helper, error) {
	query := `SELECT ` + helperColumns + ` FROM helpers`
	var args []interface{}
	if filter.Approved != nil {
		query += ` WHERE approved = ?`
		args = append(args, *filter.Approved)
	}
	query += ` ORDER BY created_at DESC, id ASC`

	var rows []helperRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list helpers: %w", err)
	}
	return toModels(rows), nil
}

// ListEligibleHelpers returns the matching candidates for query. With a location and
// a positive radius the rows are prefiltered to the geohash cells around the location.
func (r *HelperRepo) ListEligibleHelpers(ctx context.Context, q models.HelperQuery) ([]*models.Helper, error) {
	segment := newrelic.StartDatastoreSegment(ctx, r.datastore(), "helpers", "SELECT")
	defer newrelic.EndSegment(segment)

	query := `SELECT ` + helperColumns + ` FROM helpers
		WHERE category_id = ? AND approved = TRUE AND available = TRUE`
	args := []interface{}{q.CategoryID}

	if q.Near != nil && q.RadiusKm > 0 {
		if cells, precision := utils.SearchCells(*q.Near, q.RadiusKm); len(cells) > 0 {
			query += ` AND substr(geohash, 1, ?) IN (?)`
			args = append(args, int(precision), cells)
		}
	}
	query += ` ORDER BY created_at ASC, id ASC`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build eligible helper query: %w", err)
	}

	var rows []helperRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list eligible helpers: %w", err)
	}
	return toModels(rows), nil
}

func (r *HelperRepo) datastore() nr.DatastoreProduct {
	if r.cfg != nil && r.cfg.Database.Driver == database.DriverSQLite {
		return nr.DatastoreSQLite
	}
	return nr.DatastorePostgres
}

func expectOneRow(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("helper %s: %w", id, models.ErrNotFound)
	}
	return nil
}
