package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nearfix/internal/pkg/middleware"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/services/helpers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, actor *models.Actor, helperID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if helperID != "" {
		c.SetParamNames("helperID")
		c.SetParamValues(helperID)
	}
	if actor != nil {
		middleware.SetActor(c, *actor)
	}
	return c, rec
}

var helperActor = models.Actor{ID: "h-1", Role: models.RoleHelper}

func TestCreateHelper_Handler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockHelperUC)
		wantStatus int
	}{
		{
			name: "created with location",
			body: `{"full_name":"Ravi","email":"ravi@example.com","category_id":"c-1","latitude":0,"longitude":0}`,
			setup: func(uc *mocks.MockHelperUC) {
				uc.EXPECT().RegisterHelper(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, helper *models.Helper) error {
					require.NotNil(t, helper.Location)
					assert.Equal(t, models.Coordinate{}, *helper.Location)
					helper.ID = "h-1"
					return nil
				})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "half a location is ignored",
			body: `{"full_name":"Ravi","email":"ravi@example.com","category_id":"c-1","latitude":10}`,
			setup: func(uc *mocks.MockHelperUC) {
				uc.EXPECT().RegisterHelper(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, helper *models.Helper) error {
					assert.Nil(t, helper.Location)
					return nil
				})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "coordinate out of range",
			body:       `{"full_name":"Ravi","email":"ravi@example.com","category_id":"c-1","latitude":95,"longitude":0}`,
			setup:      func(uc *mocks.MockHelperUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"full_name":`,
			setup:      func(uc *mocks.MockHelperUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: `{"full_name":"Ravi","email":"ravi@example.com","category_id":"c-1"}`,
			setup: func(uc *mocks.MockHelperUC) {
				uc.EXPECT().RegisterHelper(gomock.Any(), gomock.Any()).Return(models.ErrAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockHelperUC(ctrl)
			tt.setup(uc)

			c, rec := newContext(http.MethodPost, "/api/v1/helpers", tt.body, nil, "")
			require.NoError(t, NewHelperHandler(uc).CreateHelper(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateLocation_Handler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockHelperUC(ctrl)
		loc := models.Coordinate{Latitude: 1.5, Longitude: 2.5}
		uc.EXPECT().UpdateLocation(gomock.Any(), helperActor, "h-1", loc).Return(&models.Helper{ID: "h-1", Location: &loc}, nil)

		c, rec := newContext(http.MethodPut, "/api/v1/helpers/h-1/location", `{"latitude":1.5,"longitude":2.5}`, &helperActor, "h-1")
		require.NoError(t, NewHelperHandler(uc).UpdateLocation(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing longitude", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockHelperUC(ctrl)

		c, rec := newContext(http.MethodPut, "/api/v1/helpers/h-1/location", `{"latitude":1.5}`, &helperActor, "h-1")
		require.NoError(t, NewHelperHandler(uc).UpdateLocation(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("someone else's location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockHelperUC(ctrl)
		uc.EXPECT().UpdateLocation(gomock.Any(), helperActor, "h-2", gomock.Any()).Return(nil, models.ErrUnauthorized)

		c, rec := newContext(http.MethodPut, "/api/v1/helpers/h-2/location", `{"latitude":1,"longitude":2}`, &helperActor, "h-2")
		require.NoError(t, NewHelperHandler(uc).UpdateLocation(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestToggleAvailability_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockHelperUC(ctrl)
	uc.EXPECT().ToggleAvailability(gomock.Any(), helperActor, "h-1").Return(false, nil)

	c, rec := newContext(http.MethodPost, "/api/v1/helpers/h-1/availability/toggle", "", &helperActor, "h-1")
	require.NoError(t, NewHelperHandler(uc).ToggleAvailability(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]bool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body.Data["available"])
}

func TestSetAvailability_Handler(t *testing.T) {
	t.Run("explicit value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockHelperUC(ctrl)
		uc.EXPECT().SetAvailability(gomock.Any(), helperActor, "h-1", true).Return(nil)

		c, rec := newContext(http.MethodPut, "/api/v1/helpers/h-1/availability", `{"available":true}`, &helperActor, "h-1")
		require.NoError(t, NewHelperHandler(uc).SetAvailability(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockHelperUC(ctrl)

		c, rec := newContext(http.MethodPut, "/api/v1/helpers/h-1/availability", `{}`, &helperActor, "h-1")
		require.NoError(t, NewHelperHandler(uc).SetAvailability(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApproveAndList_Handler(t *testing.T) {
	admin := models.Actor{ID: "a-1", Role: models.RoleAdmin}

	t.Run("approve unknown helper", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockHelperUC(ctrl)
		uc.EXPECT().ApproveHelper(gomock.Any(), admin, "h-9").Return(nil, models.ErrNotFound)

		c, rec := newContext(http.MethodPost, "/api/v1/admin/helpers/h-9/approve", "", &admin, "h-9")
		require.NoError(t, NewHelperHandler(uc).ApproveHelper(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list pending helpers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockHelperUC(ctrl)
		pending := false
		uc.EXPECT().ListHelpers(gomock.Any(), admin, models.HelperFilter{Approved: &pending}).
			Return([]*models.Helper{{ID: "h-1"}}, nil)

		c, rec := newContext(http.MethodGet, "/api/v1/admin/helpers?approved=false", "", &admin, "")
		require.NoError(t, NewHelperHandler(uc).ListHelpers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad approved filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockHelperUC(ctrl)

		c, rec := newContext(http.MethodGet, "/api/v1/admin/helpers?approved=maybe", "", &admin, "")
		require.NoError(t, NewHelperHandler(uc).ListHelpers(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
