package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nearfix/internal/pkg/database"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/services/requests"
)

// RunInTx runs fn inside a database transaction
func (r *RequestRepo) RunInTx(ctx context.Context, fn func(tx requests.RequestTx) error) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&requestTx{tx: tx})
	})
}

// GetRequestByID returns a request, serving from the snapshot cache when possible
func (r *RequestRepo) GetRequestByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	if r.cacheEnabled() {
		var cached models.ServiceRequest
		err := r.redisClient.GetJSON(ctx, requestKey(id), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, database.ErrCacheMiss) {
			logger.Warn("Request cache read failed",
				logger.String("request_id", id),
				logger.Err(err))
		}
	}

	request, err := getRequest(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	if r.cacheEnabled() {
		ttl := time.Duration(r.cfg.Cache.TTLSeconds) * time.Second
		if err := r.redisClient.SetJSON(ctx, requestKey(id), request, ttl); err != nil {
			logger.Warn("Request cache write failed",
				logger.String("request_id", id),
				logger.Err(err))
		}
	}
	return request, nil
}

// ListRequests returns requests matching filter, newest first
func (r *RequestRepo) ListRequests(ctx context.Context, filter models.RequestFilter) ([]*models.ServiceRequest, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.RequesterID != "" {
		conditions = append(conditions, "requester_id = ?")
		args = append(args, filter.RequesterID)
	}
	if filter.HelperID != "" {
		conditions = append(conditions, "helper_id = ?")
		args = append(args, filter.HelperID)
	}

	query := `SELECT ` + requestColumns + ` FROM service_requests`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	var rows []requestRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	list := make([]*models.ServiceRequest, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}
	return list, nil
}

// EvictRequest drops the cached snapshot of a request
func (r *RequestRepo) EvictRequest(ctx context.Context, id string) error {
	if r.redisClient == nil {
		return nil
	}
	return r.redisClient.Delete(ctx, requestKey(id))
}

func (r *RequestRepo) cacheEnabled() bool {
	return r.redisClient != nil && r.cfg.Cache.TTLSeconds > 0
}

// requestTx implements requests.RequestTx on an open transaction
type requestTx struct {
	tx *sqlx.Tx
}

func (t *requestTx) ReserveHelper(ctx context.Context, helperID, requestID string) (bool, error) {
	query := t.tx.Rebind(`UPDATE helpers SET reserved_request_id = ?
		WHERE id = ? AND reserved_request_id IS NULL AND available = TRUE AND approved = TRUE`)
	result, err := t.tx.ExecContext(ctx, query, requestID, helperID)
	if err != nil {
		return false, fmt.Errorf("failed to reserve helper: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}

func (t *requestTx) ReleaseHelper(ctx context.Context, helperID, requestID string) error {
	query := t.tx.Rebind(`UPDATE helpers SET reserved_request_id = NULL WHERE id = ? AND reserved_request_id = ?`)
	if _, err := t.tx.ExecContext(ctx, query, helperID, requestID); err != nil {
		return fmt.Errorf("failed to release helper: %w", err)
	}
	return nil
}

func (t *requestTx) InsertRequest(ctx context.Context, request *models.ServiceRequest) error {
	var helperID sql.NullString
	if request.HelperID != nil {
		helperID = sql.NullString{String: *request.HelperID, Valid: true}
	}
	var distance sql.NullFloat64
	if request.DistanceKm != nil {
		distance = sql.NullFloat64{Float64: *request.DistanceKm, Valid: true}
	}
	var lat, lng sql.NullFloat64
	if request.Location != nil {
		lat = sql.NullFloat64{Float64: request.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: request.Location.Longitude, Valid: true}
	}

	query := t.tx.Rebind(`
		INSERT INTO service_requests (` + requestColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := t.tx.ExecContext(ctx, query,
		request.ID, request.RequesterID, request.CategoryID, helperID,
		request.Title, request.Description, lat, lng, request.Address,
		distance, string(request.Status), request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert request: %w", err)
	}
	return nil
}

func (t *requestTx) GetRequest(ctx context.Context, id string) (*models.ServiceRequest, error) {
	return getRequest(ctx, t.tx, id)
}

func (t *requestTx) UpdateStatus(ctx context.Context, id string, from, to models.RequestStatus, updatedAt time.Time) error {
	query := t.tx.Rebind(`UPDATE service_requests SET status = ?, updated_at = ? WHERE id = ? AND status = ?`)
	result, err := t.tx.ExecContext(ctx, query, string(to), updatedAt, id, string(from))
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("request %s is no longer %s: %w", id, from, models.ErrStatusConflict)
	}
	return nil
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	sqlx.QueryerContext
	Rebind(query string) string
}

func getRequest(ctx context.Context, q queryer, id string) (*models.ServiceRequest, error) {
	var row requestRow
	query := q.Rebind(`SELECT ` + requestColumns + ` FROM service_requests WHERE id = ?`)
	if err := sqlx.GetContext(ctx, q, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("request %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return row.toModel(), nil
}
