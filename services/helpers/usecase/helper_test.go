package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nearfix/internal/pkg/constants"
	"github.com/piresc/nearfix/internal/pkg/models"
	catalogmocks "github.com/piresc/nearfix/services/catalog/mocks"
	"github.com/piresc/nearfix/services/helpers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type helperMocks struct {
	repo    *mocks.MockHelperRepo
	catalog *catalogmocks.MockCatalogRepo
	gw      *mocks.MockHelperGW
	uc      *HelperUC
}

func newHelperMocks(t *testing.T) *helperMocks {
	ctrl := gomock.NewController(t)
	m := &helperMocks{
		repo:    mocks.NewMockHelperRepo(ctrl),
		catalog: catalogmocks.NewMockCatalogRepo(ctrl),
		gw:      mocks.NewMockHelperGW(ctrl),
	}
	m.uc = NewHelperUC(m.repo, m.catalog, m.gw)
	return m
}

var (
	helperActor = models.Actor{ID: "h-1", Role: models.RoleHelper}
	adminActor  = models.Actor{ID: "a-1", Role: models.RoleAdmin}
)

func TestRegisterHelper(t *testing.T) {
	plumber := &models.ServiceCategory{ID: "cat-plumber", Name: "Plumber"}

	t.Run("valid helper starts available and unapproved", func(t *testing.T) {
		m := newHelperMocks(t)
		m.catalog.EXPECT().GetCategory(gomock.Any(), "cat-plumber").Return(plumber, nil)
		m.repo.EXPECT().CreateHelper(gomock.Any(), gomock.Any()).Return(nil)

		helper := &models.Helper{
			FullName:   " Ravi  Kumar ",
			Email:      "Ravi@Example.com",
			CategoryID: "cat-plumber",
			Location:   &models.Coordinate{Latitude: 10, Longitude: 10},
			Approved:   true,
			Available:  false,
		}
		require.NoError(t, m.uc.RegisterHelper(context.Background(), helper))

		assert.NotEmpty(t, helper.ID)
		assert.Equal(t, "Ravi Kumar", helper.FullName)
		assert.Equal(t, "ravi@example.com", helper.Email)
		assert.True(t, helper.Available)
		assert.False(t, helper.Approved)
		assert.Len(t, helper.Geohash, int(constants.HelperGeohashPrecision))
		assert.False(t, helper.CreatedAt.IsZero())
	})

	t.Run("helper without location has no geohash", func(t *testing.T) {
		m := newHelperMocks(t)
		m.catalog.EXPECT().GetCategory(gomock.Any(), "cat-plumber").Return(plumber, nil)
		m.repo.EXPECT().CreateHelper(gomock.Any(), gomock.Any()).Return(nil)

		helper := &models.Helper{FullName: "Ravi", Email: "ravi@example.com", CategoryID: "cat-plumber"}
		require.NoError(t, m.uc.RegisterHelper(context.Background(), helper))
		assert.Nil(t, helper.Location)
		assert.Empty(t, helper.Geohash)
	})

	t.Run("unknown category", func(t *testing.T) {
		m := newHelperMocks(t)
		m.catalog.EXPECT().GetCategory(gomock.Any(), "cat-x").Return(nil, models.ErrNotFound)

		helper := &models.Helper{FullName: "Ravi", Email: "ravi@example.com", CategoryID: "cat-x"}
		err := m.uc.RegisterHelper(context.Background(), helper)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("out of range location", func(t *testing.T) {
		m := newHelperMocks(t)
		m.catalog.EXPECT().GetCategory(gomock.Any(), "cat-plumber").Return(plumber, nil)

		helper := &models.Helper{
			FullName:   "Ravi",
			Email:      "ravi@example.com",
			CategoryID: "cat-plumber",
			Location:   &models.Coordinate{Latitude: 91, Longitude: 0},
		}
		err := m.uc.RegisterHelper(context.Background(), helper)
		assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
	})

	invalid := []struct {
		name   string
		helper models.Helper
	}{
		{"missing name", models.Helper{Email: "ravi@example.com", CategoryID: "cat-plumber"}},
		{"bad email", models.Helper{FullName: "Ravi", Email: "ravi", CategoryID: "cat-plumber"}},
		{"bad phone", models.Helper{FullName: "Ravi", Email: "ravi@example.com", Phone: "x", CategoryID: "cat-plumber"}},
		{"missing category", models.Helper{FullName: "Ravi", Email: "ravi@example.com"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			m := newHelperMocks(t)
			helper := tt.helper
			err := m.uc.RegisterHelper(context.Background(), &helper)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestUpdateLocation(t *testing.T) {
	loc := models.Coordinate{Latitude: -6.2, Longitude: 106.8}

	t.Run("helper moves itself", func(t *testing.T) {
		m := newHelperMocks(t)
		updated := &models.Helper{ID: "h-1", Location: &loc}
		m.repo.EXPECT().UpdateLocation(gomock.Any(), "h-1", loc, gomock.Len(int(constants.HelperGeohashPrecision))).Return(nil)
		m.repo.EXPECT().GetHelperByID(gomock.Any(), "h-1").Return(updated, nil)

		got, err := m.uc.UpdateLocation(context.Background(), helperActor, "h-1", loc)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("another helper is rejected", func(t *testing.T) {
		m := newHelperMocks(t)
		_, err := m.uc.UpdateLocation(context.Background(), helperActor, "h-2", loc)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("admin may not move a helper", func(t *testing.T) {
		m := newHelperMocks(t)
		_, err := m.uc.UpdateLocation(context.Background(), adminActor, "h-1", loc)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("invalid coordinate", func(t *testing.T) {
		m := newHelperMocks(t)
		_, err := m.uc.UpdateLocation(context.Background(), helperActor, "h-1", models.Coordinate{Latitude: 0, Longitude: 181})
		assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
	})

	t.Run("unknown helper", func(t *testing.T) {
		m := newHelperMocks(t)
		m.repo.EXPECT().UpdateLocation(gomock.Any(), "h-1", loc, gomock.Any()).Return(models.ErrNotFound)
		_, err := m.uc.UpdateLocation(context.Background(), helperActor, "h-1", loc)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestToggleAvailability(t *testing.T) {
	t.Run("toggle twice restores the value", func(t *testing.T) {
		m := newHelperMocks(t)
		gomock.InOrder(
			m.repo.EXPECT().ToggleAvailability(gomock.Any(), "h-1").Return(false, nil),
			m.repo.EXPECT().ToggleAvailability(gomock.Any(), "h-1").Return(true, nil),
		)
		gomock.InOrder(
			m.gw.EXPECT().PublishAvailabilityChanged(gomock.Any(), &models.HelperAvailabilityEvent{HelperID: "h-1", Available: false}).Return(nil),
			m.gw.EXPECT().PublishAvailabilityChanged(gomock.Any(), &models.HelperAvailabilityEvent{HelperID: "h-1", Available: true}).Return(nil),
		)

		first, err := m.uc.ToggleAvailability(context.Background(), helperActor, "h-1")
		require.NoError(t, err)
		assert.False(t, first)

		second, err := m.uc.ToggleAvailability(context.Background(), helperActor, "h-1")
		require.NoError(t, err)
		assert.True(t, second)
	})

	t.Run("publish failure does not fail the toggle", func(t *testing.T) {
		m := newHelperMocks(t)
		m.repo.EXPECT().ToggleAvailability(gomock.Any(), "h-1").Return(true, nil)
		m.gw.EXPECT().PublishAvailabilityChanged(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		available, err := m.uc.ToggleAvailability(context.Background(), helperActor, "h-1")
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("other actors are rejected", func(t *testing.T) {
		m := newHelperMocks(t)
		_, err := m.uc.ToggleAvailability(context.Background(), models.Actor{ID: "h-1", Role: models.RoleUser}, "h-1")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("unknown helper", func(t *testing.T) {
		m := newHelperMocks(t)
		m.repo.EXPECT().ToggleAvailability(gomock.Any(), "h-1").Return(false, models.ErrNotFound)
		_, err := m.uc.ToggleAvailability(context.Background(), helperActor, "h-1")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSetAvailability(t *testing.T) {
	m := newHelperMocks(t)
	m.repo.EXPECT().SetAvailability(gomock.Any(), "h-1", false).Return(nil)
	m.gw.EXPECT().PublishAvailabilityChanged(gomock.Any(), &models.HelperAvailabilityEvent{HelperID: "h-1", Available: false}).Return(nil)

	require.NoError(t, m.uc.SetAvailability(context.Background(), helperActor, "h-1", false))
	assert.ErrorIs(t, m.uc.SetAvailability(context.Background(), helperActor, "h-2", true), models.ErrUnauthorized)
}

func TestApproveHelper(t *testing.T) {
	t.Run("admin approves", func(t *testing.T) {
		m := newHelperMocks(t)
		approved := &models.Helper{ID: "h-1", CategoryID: "cat-plumber", Approved: true}
		m.repo.EXPECT().ApproveHelper(gomock.Any(), "h-1").Return(approved, nil)
		m.gw.EXPECT().PublishHelperApproved(gomock.Any(), &models.HelperApprovedEvent{HelperID: "h-1", CategoryID: "cat-plumber"}).Return(nil)

		got, err := m.uc.ApproveHelper(context.Background(), adminActor, "h-1")
		require.NoError(t, err)
		assert.True(t, got.Approved)
	})

	t.Run("helper cannot approve itself", func(t *testing.T) {
		m := newHelperMocks(t)
		_, err := m.uc.ApproveHelper(context.Background(), helperActor, "h-1")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("unknown helper", func(t *testing.T) {
		m := newHelperMocks(t)
		m.repo.EXPECT().ApproveHelper(gomock.Any(), "h-9").Return(nil, models.ErrNotFound)
		_, err := m.uc.ApproveHelper(context.Background(), adminActor, "h-9")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestListHelpers(t *testing.T) {
	pending := false
	filter := models.HelperFilter{Approved: &pending}

	m := newHelperMocks(t)
	m.repo.EXPECT().ListHelpers(gomock.Any(), filter).Return([]*models.Helper{{ID: "h-1"}}, nil)

	list, err := m.uc.ListHelpers(context.Background(), adminActor, filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = m.uc.ListHelpers(context.Background(), helperActor, filter)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestGetHelper(t *testing.T) {
	m := newHelperMocks(t)
	m.repo.EXPECT().GetHelperByID(gomock.Any(), "h-1").Return(&models.Helper{ID: "h-1"}, nil)

	helper, err := m.uc.GetHelper(context.Background(), "h-1")
	require.NoError(t, err)
	assert.Equal(t, "h-1", helper.ID)
}
