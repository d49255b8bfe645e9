package requests

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nearfix/services/requests RequestUC

// RequestUC defines the service request use cases
type RequestUC interface {
	SubmitRequest(ctx context.Context, actor models.Actor, input *models.SubmitRequestInput) (*models.ServiceRequest, error)
	SetStatus(ctx context.Context, actor models.Actor, id string, status models.RequestStatus) (*models.ServiceRequest, error)
	GetRequest(ctx context.Context, actor models.Actor, id string) (*models.ServiceRequest, error)
	ListRequests(ctx context.Context, actor models.Actor, limit int) ([]*models.ServiceRequest, error)
}
