package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
)

// RegisterUser validates and stores a requester account, filling ID and CreatedAt
func (uc *UserUC) RegisterUser(ctx context.Context, user *models.User) error {
	user.FullName = utils.CleanText(user.FullName)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Phone = strings.TrimSpace(user.Phone)
	user.Address = utils.CleanText(user.Address)

	if user.FullName == "" {
		return fmt.Errorf("%w: full name is required", models.ErrInvalidInput)
	}
	if !utils.IsValidEmail(user.Email) {
		return fmt.Errorf("%w: email is not valid", models.ErrInvalidInput)
	}
	if user.Phone != "" && !utils.IsValidPhoneNumber(user.Phone) {
		return fmt.Errorf("%w: phone is not valid", models.ErrInvalidInput)
	}

	user.ID = uuid.NewString()
	user.CreatedAt = models.Now()

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID),
		logger.String("email", utils.MaskEmail(user.Email)))
	return nil
}

// GetUser returns a user. Users may read themselves, admins anyone.
func (uc *UserUC) GetUser(ctx context.Context, actor models.Actor, id string) (*models.User, error) {
	if !actor.IsAdmin() && !actor.Is(models.RoleUser, id) {
		return nil, models.ErrUnauthorized
	}
	return uc.userRepo.GetUserByID(ctx, id)
}

// ListUsers returns every requester account. Admin only.
func (uc *UserUC) ListUsers(ctx context.Context, actor models.Actor) ([]*models.User, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrUnauthorized
	}
	return uc.userRepo.ListUsers(ctx)
}
