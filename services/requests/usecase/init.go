package usecase

import (
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/services/catalog"
	"github.com/piresc/nearfix/services/match"
	"github.com/piresc/nearfix/services/requests"
	"github.com/piresc/nearfix/services/users"
)

// RequestUC implements requests.RequestUC
type RequestUC struct {
	cfg         *models.Config
	requestRepo requests.RequestRepo
	catalogRepo catalog.CatalogRepo
	userRepo    users.UserRepo
	matchUC     match.MatchUC
	requestGW   requests.RequestGW
}

// NewRequestUC creates a new request use case
func NewRequestUC(
	cfg *models.Config,
	requestRepo requests.RequestRepo,
	catalogRepo catalog.CatalogRepo,
	userRepo users.UserRepo,
	matchUC match.MatchUC,
	requestGW requests.RequestGW,
) *RequestUC {
	return &RequestUC{
		cfg:         cfg,
		requestRepo: requestRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		matchUC:     matchUC,
		requestGW:   requestGW,
	}
}
