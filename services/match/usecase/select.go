package usecase

import (
	"sort"

	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
)

// SelectBestHelper returns the eligible candidate nearest to location, or nil.
//
// Candidates are re-checked for eligibility and those without a location are skipped.
// Ties keep the earliest candidate in iteration order. A positive maxRadiusKm drops
// candidates farther than that distance.
func SelectBestHelper(categoryID string, location *models.Coordinate, candidates []*models.Helper, maxRadiusKm float64) *models.MatchResult {
	if location == nil {
		return nil
	}

	var best *models.MatchResult
	for _, candidate := range candidates {
		if !candidate.Eligible(categoryID) || candidate.Location == nil {
			continue
		}
		distance := utils.CalculateDistance(*location, *candidate.Location)
		if maxRadiusKm > 0 && distance > maxRadiusKm {
			continue
		}
		if best == nil || distance < best.DistanceKm {
			best = &models.MatchResult{Helper: candidate, DistanceKm: distance}
		}
	}
	return best
}

// RankCandidates orders every selectable candidate by distance, nearest first.
// The first element is always the helper SelectBestHelper would pick.
func RankCandidates(categoryID string, location *models.Coordinate, candidates []*models.Helper, maxRadiusKm float64) []models.RankedHelper {
	if location == nil {
		return nil
	}

	ranked := make([]models.RankedHelper, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.Eligible(categoryID) || candidate.Location == nil {
			continue
		}
		distance := utils.CalculateDistance(*location, *candidate.Location)
		if maxRadiusKm > 0 && distance > maxRadiusKm {
			continue
		}
		ranked = append(ranked, models.RankedHelper{Helper: candidate, DistanceKm: distance})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}
