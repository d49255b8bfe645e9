package usecase

import (
	"github.com/piresc/nearfix/services/users"
)

// UserUC implements users.UserUC
type UserUC struct {
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(userRepo users.UserRepo) *UserUC {
	return &UserUC{userRepo: userRepo}
}
