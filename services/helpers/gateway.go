package helpers

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nearfix/services/helpers HelperGW

// HelperGW publishes helper events
type HelperGW interface {
	PublishAvailabilityChanged(ctx context.Context, event *models.HelperAvailabilityEvent) error
	PublishHelperApproved(ctx context.Context, event *models.HelperApprovedEvent) error
}
