package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// HelperRepo implements helpers.HelperRepo on SQL
type HelperRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewHelperRepository creates a new helper repository
func NewHelperRepository(cfg *models.Config, db *sqlx.DB) *HelperRepo {
	return &HelperRepo{
		cfg: cfg,
		db:  db,
	}
}

const helperColumns = `id, full_name, email, phone, category_id, latitude, longitude, geohash, available, approved, created_at`

// helperRow mirrors a helpers row; location columns are nullable
type helperRow struct {
	ID         string          `db:"id"`
	FullName   string          `db:"full_name"`
	Email      string          `db:"email"`
	Phone      string          `db:"phone"`
	CategoryID string          `db:"category_id"`
	Latitude   sql.NullFloat64 `db:"latitude"`
	Longitude  sql.NullFloat64 `db:"longitude"`
	Geohash    sql.NullString  `db:"geohash"`
	Available  bool            `db:"available"`
	Approved   bool            `db:"approved"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (r helperRow) toModel() *models.Helper {
	helper := &models.Helper{
		ID:         r.ID,
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		CategoryID: r.CategoryID,
		Geohash:    r.Geohash.String,
		Available:  r.Available,
		Approved:   r.Approved,
		CreatedAt:  r.CreatedAt,
	}
	// both parts or nothing
	if r.Latitude.Valid && r.Longitude.Valid {
		helper.Location = &models.Coordinate{Latitude: r.Latitude.Float64, Longitude: r.Longitude.Float64}
	}
	return helper
}

func toModels(rows []helperRow) []*models.Helper {
	helpers := make([]*models.Helper, 0, len(rows))
	for _, row := range rows {
		helpers = append(helpers, row.toModel())
	}
	return helpers
}

func nullableLocation(location *models.Coordinate, geohash string) (lat, lng sql.NullFloat64, hash sql.NullString) {
	if location == nil {
		return
	}
	lat = sql.NullFloat64{Float64: location.Latitude, Valid: true}
	lng = sql.NullFloat64{Float64: location.Longitude, Valid: true}
	hash = sql.NullString{String: geohash, Valid: geohash != ""}
	return
}
