package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardCounts(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := NewAdminRepository(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectQuery(regexp.QuoteMeta("(SELECT COUNT(*) FROM helpers WHERE approved = FALSE) AS pending_helpers")).
		WillReturnRows(sqlmock.NewRows([]string{"total_users", "total_helpers", "pending_helpers", "total_requests"}).
			AddRow(12, 5, 2, 40))

	stats, err := repo.GetDashboardCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalUsers)
	assert.Equal(t, 5, stats.TotalHelpers)
	assert.Equal(t, 2, stats.PendingHelpers)
	assert.Equal(t, 40, stats.TotalRequests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDashboardCounts_Error(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := NewAdminRepository(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err = repo.GetDashboardCounts(context.Background())
	assert.ErrorContains(t, err, "connection reset")
}
