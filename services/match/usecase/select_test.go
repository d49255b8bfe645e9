package usecase

import (
	"math"
	"testing"

	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plumber = "cat-plumber"

// kmPerDegree is one degree of longitude along the equator
const kmPerDegree = constants.EarthRadiusKm * math.Pi / 180.0

func eligibleAt(id string, lat, lng float64) *models.Helper {
	return &models.Helper{
		ID:         id,
		CategoryID: plumber,
		Location:   &models.Coordinate{Latitude: lat, Longitude: lng},
		Available:  true,
		Approved:   true,
	}
}

func TestSelectBestHelper_NoRequesterLocation(t *testing.T) {
	candidates := []*models.Helper{eligibleAt("h-1", 0, 0), eligibleAt("h-2", 1, 1)}
	assert.Nil(t, SelectBestHelper(plumber, nil, candidates, 0))
}

func TestSelectBestHelper_NoLocatedCandidate(t *testing.T) {
	unlocated := eligibleAt("h-1", 0, 0)
	unlocated.Location = nil

	assert.Nil(t, SelectBestHelper(plumber, &models.Coordinate{}, []*models.Helper{unlocated}, 0))
	assert.Nil(t, SelectBestHelper(plumber, &models.Coordinate{}, nil, 0))
}

func TestSelectBestHelper_TieKeepsFirst(t *testing.T) {
	origin := &models.Coordinate{Latitude: 0, Longitude: 0}
	candidates := []*models.Helper{
		eligibleAt("h-10km", 0, 10/kmPerDegree),
		eligibleAt("h-5km-east", 0, 5/kmPerDegree),
		eligibleAt("h-5km-west", 0, -5/kmPerDegree),
		eligibleAt("h-20km", 0, 20/kmPerDegree),
	}

	result := SelectBestHelper(plumber, origin, candidates, 0)
	require.NotNil(t, result)
	assert.Equal(t, "h-5km-east", result.Helper.ID)
	assert.InDelta(t, 5.0, result.DistanceKm, 1e-6)
}

func TestSelectBestHelper_SkipsIneligible(t *testing.T) {
	origin := &models.Coordinate{Latitude: 0, Longitude: 0}

	unavailable := eligibleAt("unavailable", 0, 0.001)
	unavailable.Available = false
	unapproved := eligibleAt("unapproved", 0, 0.002)
	unapproved.Approved = false
	otherCategory := eligibleAt("painter", 0, 0.003)
	otherCategory.CategoryID = "cat-painter"
	far := eligibleAt("far", 0, 1)

	result := SelectBestHelper(plumber, origin, []*models.Helper{unavailable, unapproved, otherCategory, nil, far}, 0)
	require.NotNil(t, result)
	assert.Equal(t, "far", result.Helper.ID)
}

func TestSelectBestHelper_OnlyCandidateFarAway(t *testing.T) {
	origin := &models.Coordinate{Latitude: 10, Longitude: 10}
	far := eligibleAt("far", -40, -120)

	result := SelectBestHelper(plumber, origin, []*models.Helper{far}, 0)
	require.NotNil(t, result)
	assert.Equal(t, "far", result.Helper.ID)
}

func TestSelectBestHelper_RadiusCutoff(t *testing.T) {
	origin := &models.Coordinate{Latitude: 0, Longitude: 0}
	candidates := []*models.Helper{
		eligibleAt("h-30km", 0, 30/kmPerDegree),
		eligibleAt("h-8km", 0, 8/kmPerDegree),
	}

	result := SelectBestHelper(plumber, origin, candidates, 10)
	require.NotNil(t, result)
	assert.Equal(t, "h-8km", result.Helper.ID)

	assert.Nil(t, SelectBestHelper(plumber, origin, candidates, 5))
}

func TestSelectBestHelper_PlumberScenario(t *testing.T) {
	requester := &models.Coordinate{Latitude: 10.0, Longitude: 10.05}
	first := eligibleAt("h-a", 10.0, 10.0)
	second := eligibleAt("h-b", 10.0, 10.1)

	distA := utils.CalculateDistance(*requester, *first.Location)
	distB := utils.CalculateDistance(*requester, *second.Location)

	result := SelectBestHelper(plumber, requester, []*models.Helper{first, second}, 0)
	require.NotNil(t, result)

	switch {
	case distA < distB:
		assert.Equal(t, "h-a", result.Helper.ID)
	case distB < distA:
		assert.Equal(t, "h-b", result.Helper.ID)
	default:
		// same latitude, mirrored longitudes: equidistant, so iteration order decides
		assert.Equal(t, "h-a", result.Helper.ID)
	}
	assert.InDelta(t, distA, result.DistanceKm, 1e-9)

	// moving the requester east makes h-b strictly nearer
	shifted := &models.Coordinate{Latitude: 10.0, Longitude: 10.07}
	result = SelectBestHelper(plumber, shifted, []*models.Helper{first, second}, 0)
	require.NotNil(t, result)
	assert.Equal(t, "h-b", result.Helper.ID)
}

func TestRankCandidates(t *testing.T) {
	origin := &models.Coordinate{Latitude: 0, Longitude: 0}
	unapproved := eligibleAt("unapproved", 0, 0)
	unapproved.Approved = false
	candidates := []*models.Helper{
		eligibleAt("h-10km", 0, 10/kmPerDegree),
		eligibleAt("h-5km-east", 0, 5/kmPerDegree),
		unapproved,
		eligibleAt("h-5km-west", 0, -5/kmPerDegree),
		eligibleAt("h-20km", 0, 20/kmPerDegree),
	}

	ranked := RankCandidates(plumber, origin, candidates, 15)
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Helper.ID)
	}
	assert.Equal(t, []string{"h-5km-east", "h-5km-west", "h-10km"}, ids)

	best := SelectBestHelper(plumber, origin, candidates, 15)
	require.NotNil(t, best)
	assert.Equal(t, ranked[0].Helper.ID, best.Helper.ID)

	assert.Nil(t, RankCandidates(plumber, nil, candidates, 0))
}
