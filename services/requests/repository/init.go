package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/database"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// RequestRepo implements requests.RequestRepo on SQL with a Redis snapshot cache
type RequestRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRequestRepository creates a new request repository. redisClient may be nil.
func NewRequestRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *RequestRepo {
	return &RequestRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

const requestColumns = `id, requester_id, category_id, helper_id, title, description, latitude, longitude, address, distance_km, status, created_at, updated_at`

type requestRow struct {
	ID          string          `db:"id"`
	RequesterID string          `db:"requester_id"`
	CategoryID  string          `db:"category_id"`
	HelperID    sql.NullString  `db:"helper_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
	Address     string          `db:"address"`
	DistanceKm  sql.NullFloat64 `db:"distance_km"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r requestRow) toModel() *models.ServiceRequest {
	request := &models.ServiceRequest{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Description: r.Description,
		Address:     r.Address,
		Status:      models.RequestStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.HelperID.Valid {
		helperID := r.HelperID.String
		request.HelperID = &helperID
	}
	if r.DistanceKm.Valid {
		distance := r.DistanceKm.Float64
		request.DistanceKm = &distance
	}
	if r.Latitude.Valid && r.Longitude.Valid {
		request.Location = &models.Coordinate{Latitude: r.Latitude.Float64, Longitude: r.Longitude.Float64}
	}
	return request
}

func requestKey(id string) string {
	return fmt.Sprintf(constants.KeyRequest, id)
}
