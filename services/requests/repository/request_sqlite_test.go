package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nearfix/internal/pkg/database"
	"github.com/piresc/nearfix/internal/pkg/models"
	"github.com/piresc/nearfix/services/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sqliteFixture struct {
	db       *sqlx.DB
	repo     *RequestRepo
	category string
}

func setupSQLite(t *testing.T) *sqliteFixture {
	t.Helper()
	client, err := database.NewSQLClient(models.DatabaseConfig{Driver: database.DriverSQLite, Database: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	db := client.GetDB()
	require.NoError(t, database.Migrate(ctx, db))

	var category string
	require.NoError(t, db.GetContext(ctx, &category, `SELECT id FROM service_categories WHERE name = 'Plumber'`))

	now := time.Now().UTC()
	db.MustExecContext(ctx, `INSERT INTO users (id, full_name, email, created_at) VALUES ('u-1', 'Asha', 'asha@example.com', ?)`, now)
	db.MustExecContext(ctx, `INSERT INTO helpers (id, full_name, email, category_id, available, approved, created_at)
		VALUES ('h-1', 'Ravi', 'ravi@example.com', ?, TRUE, TRUE, ?)`, category, now)

	return &sqliteFixture{
		db:       db,
		repo:     NewRequestRepository(&models.Config{}, db, nil),
		category: category,
	}
}

func (f *sqliteFixture) helperAvailable(t *testing.T, id string) bool {
	var available bool
	require.NoError(t, f.db.Get(&available, `SELECT available FROM helpers WHERE id = ?`, id))
	return available
}

func (f *sqliteFixture) setAvailable(t *testing.T, id string, available bool) {
	f.db.MustExec(`UPDATE helpers SET available = ? WHERE id = ?`, available, id)
}

func (f *sqliteFixture) reservedBy(t *testing.T, id string) string {
	var reserved sql.NullString
	require.NoError(t, f.db.Get(&reserved, `SELECT reserved_request_id FROM helpers WHERE id = ?`, id))
	return reserved.String
}

func (f *sqliteFixture) reserve(t *testing.T, helperID, requestID string) bool {
	ctx := context.Background()
	var reserved bool
	require.NoError(t, f.repo.RunInTx(ctx, func(tx requests.RequestTx) error {
		var err error
		reserved, err = tx.ReserveHelper(ctx, helperID, requestID)
		return err
	}))
	return reserved
}

func (f *sqliteFixture) release(t *testing.T, helperID, requestID string) {
	ctx := context.Background()
	require.NoError(t, f.repo.RunInTx(ctx, func(tx requests.RequestTx) error {
		return tx.ReleaseHelper(ctx, helperID, requestID)
	}))
}

func TestSQLite_ReserveIsExclusive(t *testing.T) {
	f := setupSQLite(t)

	assert.True(t, f.reserve(t, "h-1", "r-1"))
	assert.False(t, f.reserve(t, "h-1", "r-2"))
	assert.Equal(t, "r-1", f.reservedBy(t, "h-1"))
	assert.True(t, f.helperAvailable(t, "h-1"), "reserving never touches the availability flag")

	f.release(t, "h-1", "r-1")
	assert.Empty(t, f.reservedBy(t, "h-1"))
	assert.True(t, f.reserve(t, "h-1", "r-2"))
}

func TestSQLite_ReleaseOnlyByHolder(t *testing.T) {
	f := setupSQLite(t)

	require.True(t, f.reserve(t, "h-1", "r-1"))

	// a request that never held the reservation cannot free it
	f.release(t, "h-1", "r-other")
	assert.Equal(t, "r-1", f.reservedBy(t, "h-1"))
	assert.False(t, f.reserve(t, "h-1", "r-2"))
}

func TestSQLite_OfflineHelperStaysOfflineAfterRelease(t *testing.T) {
	f := setupSQLite(t)

	require.True(t, f.reserve(t, "h-1", "r-1"))
	f.setAvailable(t, "h-1", false)

	f.release(t, "h-1", "r-1")
	assert.False(t, f.helperAvailable(t, "h-1"))
	assert.Empty(t, f.reservedBy(t, "h-1"))

	// offline helpers cannot be reserved
	assert.False(t, f.reserve(t, "h-1", "r-2"))

	// toggling back on while a job is live does not open a second slot
	f.setAvailable(t, "h-1", true)
	require.True(t, f.reserve(t, "h-1", "r-2"))
	f.setAvailable(t, "h-1", false)
	f.setAvailable(t, "h-1", true)
	assert.False(t, f.reserve(t, "h-1", "r-3"))
}

func TestSQLite_RollbackUndoesReservation(t *testing.T) {
	f := setupSQLite(t)
	ctx := context.Background()

	err := f.repo.RunInTx(ctx, func(tx requests.RequestTx) error {
		if _, err := tx.ReserveHelper(ctx, "h-1", "r-1"); err != nil {
			return err
		}
		// unknown requester violates the foreign key
		return tx.InsertRequest(ctx, &models.ServiceRequest{
			ID: "r-1", RequesterID: "ghost", CategoryID: f.category, Title: "Leak",
			Status: models.RequestStatusPending, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
		})
	})
	require.Error(t, err)
	assert.Empty(t, f.reservedBy(t, "h-1"))

	_, err = f.repo.GetRequestByID(ctx, "r-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSQLite_StatusLifecycle(t *testing.T) {
	f := setupSQLite(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	helperID := "h-1"

	for i, id := range []string{"r-old", "r-new"} {
		request := &models.ServiceRequest{
			ID: id, RequesterID: "u-1", CategoryID: f.category, Title: "Leak",
			Location: &models.Coordinate{Latitude: 0, Longitude: 0},
			HelperID: &helperID, Status: models.RequestStatusAccepted,
			CreatedAt: created.Add(time.Duration(i) * time.Hour), UpdatedAt: created,
		}
		require.NoError(t, f.repo.RunInTx(ctx, func(tx requests.RequestTx) error {
			return tx.InsertRequest(ctx, request)
		}))
	}

	stored, err := f.repo.GetRequestByID(ctx, "r-old")
	require.NoError(t, err)
	require.NotNil(t, stored.Location)
	assert.Equal(t, models.Coordinate{}, *stored.Location)

	list, err := f.repo.ListRequests(ctx, models.RequestFilter{HelperID: "h-1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r-new", list[0].ID)

	later := created.Add(2 * time.Hour)
	require.NoError(t, f.repo.RunInTx(ctx, func(tx requests.RequestTx) error {
		return tx.UpdateStatus(ctx, "r-old", models.RequestStatusAccepted, models.RequestStatusInProgress, later)
	}))

	// a second writer still believing the request is accepted loses
	err = f.repo.RunInTx(ctx, func(tx requests.RequestTx) error {
		return tx.UpdateStatus(ctx, "r-old", models.RequestStatusAccepted, models.RequestStatusRejected, later)
	})
	assert.ErrorIs(t, err, models.ErrStatusConflict)

	stored, err = f.repo.GetRequestByID(ctx, "r-old")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusInProgress, stored.Status)
	assert.True(t, stored.UpdatedAt.Equal(later))
}
