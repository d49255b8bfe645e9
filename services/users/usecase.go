package users

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nearfix/services/users UserUC

// UserUC defines the requester account use cases
type UserUC interface {
	RegisterUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, actor models.Actor, id string) (*models.User, error)
	ListUsers(ctx context.Context, actor models.Actor) ([]*models.User, error)
}
