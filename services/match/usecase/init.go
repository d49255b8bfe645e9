package usecase

import (
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/services/helpers"
)

// MatchUC implements match.MatchUC on top of the helper directory
type MatchUC struct {
	cfg        *models.Config
	helperRepo helpers.HelperRepo
}

// NewMatchUC creates a new match use case
func NewMatchUC(cfg *models.Config, helperRepo helpers.HelperRepo) *MatchUC {
	return &MatchUC{
		cfg:        cfg,
		helperRepo: helperRepo,
	}
}
