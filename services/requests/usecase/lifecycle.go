package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/services/requests"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// SetStatus moves a request to status on behalf of its assigned helper
func (uc *RequestUC) SetStatus(ctx context.Context, actor models.Actor, id string, status models.RequestStatus) (*models.ServiceRequest, error) {
	var (
		updated *models.ServiceRequest
		from    models.RequestStatus
	)

	err := uc.requestRepo.RunInTx(ctx, func(tx requests.RequestTx) error {
		request, err := tx.GetRequest(ctx, id)
		if err != nil {
			return err
		}
		if actor.Role != models.RoleHelper || !request.AssignedTo(actor.ID) {
			return models.ErrUnauthorized
		}
		if !status.Valid() {
			return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
		}
		if !request.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s to %s", models.ErrInvalidTransition, request.Status, status)
		}

		from = request.Status
		now := models.Now()
		if err := tx.UpdateStatus(ctx, id, from, status, now); err != nil {
			return err
		}
		if uc.cfg.Match.ExclusiveAssignment && status.Terminal() {
			if err := tx.ReleaseHelper(ctx, actor.ID, id); err != nil {
				return err
			}
		}

		request.Status = status
		request.UpdatedAt = now
		updated = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepo.EvictRequest(ctx, id); err != nil {
		logger.Warn("Failed to evict cached request",
			logger.String("request_id", id),
			logger.Err(err))
	}

	logger.Info("Request status changed",
		logger.String("request_id", id),
		logger.String("helper_id", actor.ID),
		logger.String("from", string(from)),
		logger.String("to", string(status)))

	event := &models.RequestStatusChangedEvent{RequestID: id, HelperID: actor.ID, From: from, To: status}
	if err := uc.requestGW.PublishStatusChanged(ctx, event); err != nil {
		logger.Warn("Failed to publish status changed event",
			logger.String("request_id", id),
			logger.Err(err))
	}
	return updated, nil
}

// GetRequest returns a request to its requester, its assigned helper or an admin
func (uc *RequestUC) GetRequest(ctx context.Context, actor models.Actor, id string) (*models.ServiceRequest, error) {
	request, err := uc.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canRead(actor, request) {
		return nil, models.ErrUnauthorized
	}
	return request, nil
}

func canRead(actor models.Actor, request *models.ServiceRequest) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleUser:
		return actor.Is(models.RoleUser, request.RequesterID)
	case models.RoleHelper:
		return actor.ID != "" && request.AssignedTo(actor.ID)
	}
	return false
}

// ListRequests lists the requests visible to actor, newest first
func (uc *RequestUC) ListRequests(ctx context.Context, actor models.Actor, limit int) ([]*models.ServiceRequest, error) {
	filter := models.RequestFilter{Limit: clampLimit(limit)}

	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleUser:
		filter.RequesterID = actor.ID
	case models.RoleHelper:
		filter.HelperID = actor.ID
	default:
		return nil, models.ErrUnauthorized
	}
	if actor.Role != models.RoleAdmin && actor.ID == "" {
		return nil, models.ErrUnauthorized
	}

	return uc.requestRepo.ListRequests(ctx, filter)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
