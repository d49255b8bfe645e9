package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/pkg/newrelic"
)

// FindBestHelper loads the eligible helpers for categoryID and returns the nearest one.
// A nil result with a nil error means no helper could be matched.
func (uc *MatchUC) FindBestHelper(ctx context.Context, categoryID string, location *models.Coordinate) (*models.MatchResult, error) {
	if location == nil {
		return nil, nil
	}

	var (
		candidates []*models.Helper
		result     *models.MatchResult
	)
	err := newrelic.WithSegment(ctx, "match.FindBestHelper", func() error {
		var err error
		candidates, err = uc.candidates(ctx, categoryID, location)
		if err != nil {
			return err
		}
		result = SelectBestHelper(categoryID, location, candidates, uc.cfg.Match.MaxRadiusKm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	newrelic.AddAttribute(ctx, "match.candidates", len(candidates))

	if result == nil {
		logger.Info("No helper matched",
			logger.String("category_id", categoryID),
			logger.Int("candidates", len(candidates)))
		return nil, nil
	}

	logger.Info("Helper matched",
		logger.String("category_id", categoryID),
		logger.String("helper_id", result.Helper.ID),
		logger.Float64("distance_km", result.DistanceKm))
	return result, nil
}

// RankCandidates returns every matchable helper for categoryID ordered nearest first
func (uc *MatchUC) RankCandidates(ctx context.Context, categoryID string, location *models.Coordinate) ([]models.RankedHelper, error) {
	if location == nil {
		return nil, nil
	}

	candidates, err := uc.candidates(ctx, categoryID, location)
	if err != nil {
		return nil, err
	}
	return RankCandidates(categoryID, location, candidates, uc.cfg.Match.MaxRadiusKm), nil
}

func (uc *MatchUC) candidates(ctx context.Context, categoryID string, location *models.Coordinate) ([]*models.Helper, error) {
	query := models.HelperQuery{
		CategoryID: categoryID,
		Near:       location,
		RadiusKm:   uc.cfg.Match.MaxRadiusKm,
	}
	candidates, err := uc.helperRepo.ListEligibleHelpers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible helpers: %w", err)
	}
	return candidates, nil
}
