package match

import (
	"context"

	"github.com/piresc/nearfix/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nearfix/services/match MatchUC

// MatchUC picks helpers for a service request
type MatchUC interface {
	FindBestHelper(ctx context.Context, categoryID string, location *models.Coordinate) (*models.MatchResult, error)
	RankCandidates(ctx context.Context, categoryID string, location *models.Coordinate) ([]models.RankedHelper, error)
}
