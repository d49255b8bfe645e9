package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/services/catalog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = models.Actor{ID: "admin-1", Role: models.RoleAdmin}

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name     string
		actor    models.Actor
		catName  string
		setup    func(repo *mocks.MockCatalogRepo, gw *mocks.MockCatalogGW)
		wantErr  error
		wantName string
	}{
		{
			name:    "admin creates category",
			actor:   admin,
			catName: "  Gardener \n",
			setup: func(repo *mocks.MockCatalogRepo, gw *mocks.MockCatalogGW) {
				repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *models.ServiceCategory) error {
						assert.NotEmpty(t, c.ID)
						assert.Equal(t, "Gardener", c.Name)
						assert.False(t, c.CreatedAt.IsZero())
						return nil
					})
				gw.EXPECT().PublishCategoryCreated(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantName: "Gardener",
		},
		{
			name:    "publish failure does not fail the call",
			actor:   admin,
			catName: "Roofer",
			setup: func(repo *mocks.MockCatalogRepo, gw *mocks.MockCatalogGW) {
				repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(nil)
				gw.EXPECT().PublishCategoryCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantName: "Roofer",
		},
		{
			name:    "non admin",
			actor:   models.Actor{ID: "u-1", Role: models.RoleUser},
			catName: "Roofer",
			wantErr: models.ErrUnauthorized,
		},
		{
			name:    "blank name",
			actor:   admin,
			catName: "   ",
			wantErr: models.ErrInvalidInput,
		},
		{
			name:    "name too long",
			actor:   admin,
			catName: strings.Repeat("x", maxCategoryNameLength+1),
			wantErr: models.ErrInvalidInput,
		},
		{
			name:    "duplicate",
			actor:   admin,
			catName: "Plumber",
			setup: func(repo *mocks.MockCatalogRepo, gw *mocks.MockCatalogGW) {
				repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(models.ErrAlreadyExists)
			},
			wantErr: models.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCatalogRepo(ctrl)
			gw := mocks.NewMockCatalogGW(ctrl)
			if tt.setup != nil {
				tt.setup(repo, gw)
			}

			category, err := NewCatalogUC(repo, gw).CreateCategory(context.Background(), tt.actor, tt.catName, "desc")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, category)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, category.Name)
		})
	}
}

func TestListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepo(ctrl)
	expected := []*models.ServiceCategory{{ID: "c-1", Name: "Plumber"}}
	repo.EXPECT().ListCategories(gomock.Any()).Return(expected, nil)

	categories, err := NewCatalogUC(repo, mocks.NewMockCatalogGW(ctrl)).ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}
