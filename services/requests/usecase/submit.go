package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
	"github.com/piresc/nearfix/services/requests"
)

const maxTitleLength = 200

// SubmitRequest creates a service request and assigns the nearest eligible helper, if any.
// The request is stored accepted when a helper was assigned and pending otherwise.
func (uc *RequestUC) SubmitRequest(ctx context.Context, actor models.Actor, input *models.SubmitRequestInput) (*models.ServiceRequest, error) {
	if actor.Role != models.RoleUser || actor.ID == "" {
		return nil, models.ErrUnauthorized
	}

	request, err := uc.newRequest(ctx, actor, input)
	if err != nil {
		return nil, err
	}

	if uc.cfg.Match.ExclusiveAssignment {
		err = uc.submitExclusive(ctx, request)
	} else {
		err = uc.submitShared(ctx, request)
	}
	if err != nil {
		return nil, err
	}

	fields := []logger.Field{
		logger.String("request_id", request.ID),
		logger.String("requester_id", request.RequesterID),
		logger.String("category_id", request.CategoryID),
		logger.String("status", string(request.Status)),
	}
	if request.HelperID != nil {
		fields = append(fields, logger.String("helper_id", *request.HelperID))
	}
	logger.Info("Service request submitted", fields...)

	uc.publishSubmitted(ctx, request)
	return request, nil
}

func (uc *RequestUC) newRequest(ctx context.Context, actor models.Actor, input *models.SubmitRequestInput) (*models.ServiceRequest, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: request body is required", models.ErrInvalidInput)
	}

	title := utils.CleanText(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrInvalidInput)
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title is too long", models.ErrInvalidInput)
	}
	if input.CategoryID == "" {
		return nil, fmt.Errorf("%w: category is required", models.ErrInvalidInput)
	}

	var location *models.Coordinate
	if input.Location != nil {
		loc, err := models.NewCoordinate(input.Location.Latitude, input.Location.Longitude)
		if err != nil {
			return nil, err
		}
		location = &loc
	}

	if _, err := uc.catalogRepo.GetCategory(ctx, input.CategoryID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown category %q", models.ErrInvalidInput, input.CategoryID)
		}
		return nil, err
	}
	if _, err := uc.userRepo.GetUserByID(ctx, actor.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("requester %s is not registered: %w", actor.ID, models.ErrUnauthorized)
		}
		return nil, err
	}

	now := models.Now()
	return &models.ServiceRequest{
		ID:          uuid.NewString(),
		RequesterID: actor.ID,
		CategoryID:  input.CategoryID,
		Title:       title,
		Description: utils.CleanText(input.Description),
		Location:    location,
		Address:     utils.CleanText(input.Address),
		Status:      models.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// submitShared matches against a snapshot of the directory. Two concurrent
// submissions may both be given the same helper.
func (uc *RequestUC) submitShared(ctx context.Context, request *models.ServiceRequest) error {
	result, err := uc.matchUC.FindBestHelper(ctx, request.CategoryID, request.Location)
	if err != nil {
		return err
	}
	if result != nil {
		assign(request, result.Helper.ID, result.DistanceKm)
	}

	return uc.requestRepo.RunInTx(ctx, func(tx requests.RequestTx) error {
		return tx.InsertRequest(ctx, request)
	})
}

// submitExclusive reserves the nearest helper that is still free inside the
// same transaction as the insert, so a helper holds at most one live job.
// The reservation lives beside the helper's availability flag and never changes it.
func (uc *RequestUC) submitExclusive(ctx context.Context, request *models.ServiceRequest) error {
	ranked, err := uc.matchUC.RankCandidates(ctx, request.CategoryID, request.Location)
	if err != nil {
		return err
	}

	return uc.requestRepo.RunInTx(ctx, func(tx requests.RequestTx) error {
		unassign(request)
		for _, candidate := range ranked {
			reserved, err := tx.ReserveHelper(ctx, candidate.Helper.ID, request.ID)
			if err != nil {
				return err
			}
			if reserved {
				assign(request, candidate.Helper.ID, candidate.DistanceKm)
				break
			}
			logger.Debug("Helper already taken, trying next candidate",
				logger.String("request_id", request.ID),
				logger.String("helper_id", candidate.Helper.ID))
		}
		return tx.InsertRequest(ctx, request)
	})
}

func assign(request *models.ServiceRequest, helperID string, distanceKm float64) {
	request.HelperID = &helperID
	request.DistanceKm = &distanceKm
	request.Status = models.RequestStatusAccepted
}

func unassign(request *models.ServiceRequest) {
	request.HelperID = nil
	request.DistanceKm = nil
	request.Status = models.RequestStatusPending
}

func (uc *RequestUC) publishSubmitted(ctx context.Context, request *models.ServiceRequest) {
	if err := uc.requestGW.PublishRequestCreated(ctx, &models.RequestCreatedEvent{Request: *request}); err != nil {
		logger.Warn("Failed to publish request created event",
			logger.String("request_id", request.ID),
			logger.Err(err))
	}
	if request.HelperID == nil {
		return
	}

	event := &models.RequestAssignedEvent{
		RequestID:  request.ID,
		HelperID:   *request.HelperID,
		DistanceKm: *request.DistanceKm,
	}
	if err := uc.requestGW.PublishRequestAssigned(ctx, event); err != nil {
		logger.Warn("Failed to publish request assigned event",
			logger.String("request_id", request.ID),
			logger.Err(err))
	}
}
