package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nearfix/internal/pkg/models"
	helpermocks "github.com/piresc/nearfix/services/helpers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestHelper(t *testing.T) {
	requester := &models.Coordinate{Latitude: 0, Longitude: 0}

	t.Run("nil location skips the directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := helpermocks.NewMockHelperRepo(ctrl)

		result, err := NewMatchUC(&models.Config{}, repo).FindBestHelper(context.Background(), plumber, nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("nearest helper wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := helpermocks.NewMockHelperRepo(ctrl)
		repo.EXPECT().ListEligibleHelpers(gomock.Any(), models.HelperQuery{CategoryID: plumber, Near: requester}).
			Return([]*models.Helper{eligibleAt("h-far", 0, 1), eligibleAt("h-near", 0, 0.1)}, nil)

		result, err := NewMatchUC(&models.Config{}, repo).FindBestHelper(context.Background(), plumber, requester)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "h-near", result.Helper.ID)
	})

	t.Run("radius is passed to the directory and enforced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := helpermocks.NewMockHelperRepo(ctrl)
		cfg := &models.Config{Match: models.MatchConfig{MaxRadiusKm: 5}}
		repo.EXPECT().ListEligibleHelpers(gomock.Any(), models.HelperQuery{CategoryID: plumber, Near: requester, RadiusKm: 5}).
			Return([]*models.Helper{eligibleAt("h-far", 0, 1)}, nil)

		result, err := NewMatchUC(cfg, repo).FindBestHelper(context.Background(), plumber, requester)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("directory failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := helpermocks.NewMockHelperRepo(ctrl)
		repo.EXPECT().ListEligibleHelpers(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := NewMatchUC(&models.Config{}, repo).FindBestHelper(context.Background(), plumber, requester)
		assert.Error(t, err)
	})
}

func TestMatchUC_RankCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := helpermocks.NewMockHelperRepo(ctrl)
	requester := &models.Coordinate{Latitude: 0, Longitude: 0}
	repo.EXPECT().ListEligibleHelpers(gomock.Any(), gomock.Any()).
		Return([]*models.Helper{eligibleAt("h-2", 0, 0.2), eligibleAt("h-1", 0, 0.1)}, nil)

	ranked, err := NewMatchUC(&models.Config{}, repo).RankCandidates(context.Background(), plumber, requester)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "h-1", ranked[0].Helper.ID)
	assert.Equal(t, "h-2", ranked[1].Helper.ID)
}
