package requests

import (
	"context"
	"time"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nearfix/services/requests RequestRepo,RequestTx

// RequestRepo defines data access for service requests
type RequestRepo interface {
	// RunInTx runs fn in one transaction. Any error from fn rolls everything back.
	RunInTx(ctx context.Context, fn func(tx RequestTx) error) error
	GetRequestByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	ListRequests(ctx context.Context, filter models.RequestFilter) ([]*models.ServiceRequest, error)
	EvictRequest(ctx context.Context, id string) error
}

// RequestTx is the set of writes that must commit together
type RequestTx interface {
	// ReserveHelper claims an available, approved helper for requestID. It
	// reports false when the helper already holds another live job.
	ReserveHelper(ctx context.Context, helperID, requestID string) (bool, error)
	// ReleaseHelper frees the helper only if requestID holds the reservation.
	// The helper's own availability flag is left alone.
	ReleaseHelper(ctx context.Context, helperID, requestID string) error
	InsertRequest(ctx context.Context, request *models.ServiceRequest) error
	GetRequest(ctx context.Context, id string) (*models.ServiceRequest, error)
	// UpdateStatus moves the request from one status to another, failing with
	// models.ErrStatusConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id string, from, to models.RequestStatus, updatedAt time.Time) error
}
