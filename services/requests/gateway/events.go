package gateway

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/events"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// RequestGW publishes request lifecycle events on the event bus
type RequestGW struct {
	publisher events.Publisher
}

// NewRequestGW creates a new request gateway
func NewRequestGW(publisher events.Publisher) *RequestGW {
	return &RequestGW{publisher: publisher}
}

func (g *RequestGW) PublishRequestCreated(ctx context.Context, event *models.RequestCreatedEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectRequestCreated, event)
}

func (g *RequestGW) PublishRequestAssigned(ctx context.Context, event *models.RequestAssignedEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectRequestAssigned, event)
}

func (g *RequestGW) PublishStatusChanged(ctx context.Context, event *models.RequestStatusChangedEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectRequestStatusChanged, event)
}
