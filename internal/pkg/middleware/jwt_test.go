package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/nearfix/internal/pkg/jwt"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "test-secret", Expiration: 10, Issuer: "nearfix"}

func issue(t *testing.T, actor models.Actor) string {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(actor, testJWT)
	require.NoError(t, err)
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	helper := models.Actor{ID: "h-1", Role: models.RoleHelper}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantActor  *models.Actor
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + issue(t, helper), wantStatus: http.StatusOK, wantActor: &helper},
		{name: "lowercase scheme", header: "bearer " + issue(t, helper), wantStatus: http.StatusOK, wantActor: &helper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen models.Actor
			h := JWTAuthMiddleware(testJWT)(func(c echo.Context) error {
				seen, _ = GetActor(c)
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, h(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantActor != nil {
				assert.Equal(t, *tt.wantActor, seen)
				assert.Equal(t, tt.wantActor.ID, c.Get(logger.ActorIDKey))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		actor      *models.Actor
		wantStatus int
	}{
		{name: "no actor", wantStatus: http.StatusUnauthorized},
		{name: "wrong role", actor: &models.Actor{ID: "u-1", Role: models.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "admin", actor: &models.Actor{ID: "a-1", Role: models.RoleAdmin}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.actor != nil {
				SetActor(c, *tt.actor)
			}

			h := RequireRole(models.RoleAdmin)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, h(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	h := RequestIDMiddleware()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "given-id")
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	require.NoError(t, h(c))
	assert.Equal(t, "given-id", rec.Header().Get(echo.HeaderXRequestID))
}
