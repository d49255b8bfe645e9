package requests

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nearfix/services/requests RequestGW

// RequestGW publishes request lifecycle events
type RequestGW interface {
	PublishRequestCreated(ctx context.Context, event *models.RequestCreatedEvent) error
	PublishRequestAssigned(ctx context.Context, event *models.RequestAssignedEvent) error
	PublishStatusChanged(ctx context.Context, event *models.RequestStatusChangedEvent) error
}
