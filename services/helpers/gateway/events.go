package gateway

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/events"
	"github.com/piresc/nearfix/internal/pkg/models"
)

// HelperGW publishes helper events on the event bus
type HelperGW struct {
	publisher events.Publisher
}

// NewHelperGW creates a new helper gateway
func NewHelperGW(publisher events.Publisher) *HelperGW {
	return &HelperGW{publisher: publisher}
}

// PublishAvailabilityChanged announces a toggle or explicit availability change
func (g *HelperGW) PublishAvailabilityChanged(ctx context.Context, event *models.HelperAvailabilityEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectHelperAvailabilityChanged, event)
}

// PublishHelperApproved announces an approval
func (g *HelperGW) PublishHelperApproved(ctx context.Context, event *models.HelperApprovedEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectHelperApproved, event)
}
