package health

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/piresc/nearfix/internal/pkg/database"
	"github.com/piresc/nearfix/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*logger.ZapLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "info", Output: buf}, nil)
	require.NoError(t, err)
	return zl, buf
}

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	t.Run("sql", func(t *testing.T) {
		db, err := sqlx.Open("sqlite3", ":memory:")
		require.NoError(t, err)
		client := database.NewSQLClientFromDB(db)
		assert.NoError(t, NewSQLChecker(client).CheckHealth(ctx))

		require.NoError(t, client.Close())
		assert.Error(t, NewSQLChecker(client).CheckHealth(ctx))
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
		defer client.Close()
		assert.NoError(t, NewRedisChecker(client).CheckHealth(ctx))
	})

	t.Run("nil clients are skipped", func(t *testing.T) {
		assert.NoError(t, NewSQLChecker(nil).CheckHealth(ctx))
		assert.NoError(t, NewRedisChecker(nil).CheckHealth(ctx))
		assert.NoError(t, NewNATSChecker(nil).CheckHealth(ctx))
	})
}

func TestService_CheckAll(t *testing.T) {
	zl, buf := newTestLogger(t)
	service := NewService(zl)
	service.AddChecker("database", CheckerFunc(func(context.Context) error { return nil }))
	service.AddChecker("redis", CheckerFunc(func(context.Context) error { return errors.New("connection refused") }))

	report := service.CheckAll(context.Background())

	assert.False(t, report.Healthy())
	assert.Equal(t, "healthy", report.Dependencies["database"].Status)
	assert.Equal(t, "unhealthy", report.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", report.Dependencies["redis"].Error)
	assert.Contains(t, buf.String(), "Health check failed")
}

func TestRegisterEndpoints(t *testing.T) {
	zl, _ := newTestLogger(t)

	tests := []struct {
		name       string
		path       string
		failing    bool
		wantStatus int
		wantKey    string
		wantValue  string
	}{
		{name: "ping", path: "/ping", wantStatus: http.StatusOK, wantKey: "go_version", wantValue: runtime.Version()},
		{name: "basic", path: "/health", wantStatus: http.StatusOK, wantKey: "status", wantValue: "ok"},
		{name: "live", path: "/health/live", wantStatus: http.StatusOK, wantKey: "status", wantValue: "alive"},
		{name: "ready", path: "/health/ready", wantStatus: http.StatusOK, wantKey: "status", wantValue: "ready"},
		{name: "not ready", path: "/health/ready", failing: true, wantStatus: http.StatusServiceUnavailable, wantKey: "status", wantValue: "unhealthy"},
		{name: "detailed", path: "/health/detailed", wantStatus: http.StatusOK, wantKey: "version", wantValue: "1.2.3"},
		{name: "detailed unhealthy", path: "/health/detailed", failing: true, wantStatus: http.StatusServiceUnavailable, wantKey: "status", wantValue: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(zl)
			service.AddChecker("database", CheckerFunc(func(context.Context) error {
				if tt.failing {
					return errors.New("down")
				}
				return nil
			}))

			e := echo.New()
			RegisterEndpoints(e, "nearfix-marketplace", "1.2.3", service)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantValue, body[tt.wantKey])
		})
	}
}
