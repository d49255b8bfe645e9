package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
)

// RegisterHelper validates and stores a new helper. New helpers start available
// but unapproved, so they are not matched until an admin approves them.
func (uc *HelperUC) RegisterHelper(ctx context.Context, helper *models.Helper) error {
	helper.FullName = utils.CleanText(helper.FullName)
	helper.Email = strings.ToLower(strings.TrimSpace(helper.Email))
	helper.Phone = strings.TrimSpace(helper.Phone)
	helper.CategoryID = strings.TrimSpace(helper.CategoryID)

	if helper.FullName == "" {
		return fmt.Errorf("%w: full name is required", models.ErrInvalidInput)
	}
	if !utils.IsValidEmail(helper.Email) {
		return fmt.Errorf("%w: email is not valid", models.ErrInvalidInput)
	}
	if helper.Phone != "" && !utils.IsValidPhoneNumber(helper.Phone) {
		return fmt.Errorf("%w: phone is not valid", models.ErrInvalidInput)
	}
	if helper.CategoryID == "" {
		return fmt.Errorf("%w: category is required", models.ErrInvalidInput)
	}
	if err := uc.checkCategory(ctx, helper.CategoryID); err != nil {
		return err
	}

	helper.Geohash = ""
	if helper.Location != nil {
		loc, err := models.NewCoordinate(helper.Location.Latitude, helper.Location.Longitude)
		if err != nil {
			return err
		}
		helper.Location = &loc
		helper.Geohash = utils.EncodeLocation(loc, constants.HelperGeohashPrecision)
	}

	helper.ID = uuid.NewString()
	helper.Available = true
	helper.Approved = false
	helper.CreatedAt = models.Now()

	if err := uc.helperRepo.CreateHelper(ctx, helper); err != nil {
		return err
	}

	logger.Info("Helper registered",
		logger.String("helper_id", helper.ID),
		logger.String("category_id", helper.CategoryID),
		logger.String("email", utils.MaskEmail(helper.Email)))
	return nil
}

func (uc *HelperUC) checkCategory(ctx context.Context, categoryID string) error {
	_, err := uc.catalogRepo.GetCategory(ctx, categoryID)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: unknown category %q", models.ErrInvalidInput, categoryID)
	}
	return err
}

// GetHelper returns a helper by id
func (uc *HelperUC) GetHelper(ctx context.Context, id string) (*models.Helper, error) {
	return uc.helperRepo.GetHelperByID(ctx, id)
}

// UpdateLocation moves the helper. Only the helper itself may do this.
func (uc *HelperUC) UpdateLocation(ctx context.Context, actor models.Actor, id string, location models.Coordinate) (*models.Helper, error) {
	if !actor.Is(models.RoleHelper, id) {
		return nil, models.ErrUnauthorized
	}
	loc, err := models.NewCoordinate(location.Latitude, location.Longitude)
	if err != nil {
		return nil, err
	}

	if err := uc.helperRepo.UpdateLocation(ctx, id, loc, utils.EncodeLocation(loc, constants.HelperGeohashPrecision)); err != nil {
		return nil, err
	}

	logger.Debug("Helper location updated",
		logger.String("helper_id", id),
		logger.Float64("latitude", loc.Latitude),
		logger.Float64("longitude", loc.Longitude))

	return uc.helperRepo.GetHelperByID(ctx, id)
}

// ToggleAvailability flips the helper's availability and returns the new value
func (uc *HelperUC) ToggleAvailability(ctx context.Context, actor models.Actor, id string) (bool, error) {
	if !actor.Is(models.RoleHelper, id) {
		return false, models.ErrUnauthorized
	}

	available, err := uc.helperRepo.ToggleAvailability(ctx, id)
	if err != nil {
		return false, err
	}

	uc.publishAvailability(ctx, id, available)
	return available, nil
}

// SetAvailability sets the helper's availability to an explicit value
func (uc *HelperUC) SetAvailability(ctx context.Context, actor models.Actor, id string, available bool) error {
	if !actor.Is(models.RoleHelper, id) {
		return models.ErrUnauthorized
	}
	if err := uc.helperRepo.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	uc.publishAvailability(ctx, id, available)
	return nil
}

func (uc *HelperUC) publishAvailability(ctx context.Context, id string, available bool) {
	logger.Info("Helper availability changed",
		logger.String("helper_id", id),
		logger.Bool("available", available))

	event := &models.HelperAvailabilityEvent{HelperID: id, Available: available}
	if err := uc.helperGW.PublishAvailabilityChanged(ctx, event); err != nil {
		logger.Warn("Failed to publish availability event",
			logger.String("helper_id", id),
			logger.Err(err))
	}
}

// ApproveHelper marks a helper as vetted. Admin only.
func (uc *HelperUC) ApproveHelper(ctx context.Context, actor models.Actor, id string) (*models.Helper, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrUnauthorized
	}

	helper, err := uc.helperRepo.ApproveHelper(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("Helper approved",
		logger.String("helper_id", helper.ID),
		logger.Actor(actor))

	event := &models.HelperApprovedEvent{HelperID: helper.ID, CategoryID: helper.CategoryID}
	if err := uc.helperGW.PublishHelperApproved(ctx, event); err != nil {
		logger.Warn("Failed to publish helper approved event",
			logger.String("helper_id", helper.ID),
			logger.Err(err))
	}
	return helper, nil
}

// ListHelpers returns helpers matching filter. Admin only.
func (uc *HelperUC) ListHelpers(ctx context.Context, actor models.Actor, filter models.HelperFilter) ([]*models.Helper, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrUnauthorized
	}
	return uc.helperRepo.ListHelpers(ctx, filter)
}
