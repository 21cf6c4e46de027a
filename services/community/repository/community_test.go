package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func communityRows(id uuid.UUID, geofence string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "is_active", "archived", "auto_activation",
		"min_active_drivers", "deactivation_threshold",
		"center_lat", "center_lng", "radius_meters", "geofence",
		"last_evaluated_at", "created_at", "updated_at",
	}).AddRow(
		id, "vidigal", "morro do vidigal", true, false, true,
		5, 3,
		nil, nil, nil, []byte(geofence),
		nil, nil, nil,
	)
}

func TestGetCommunity_DecodesGeofence(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(&models.Config{}, db)

	communityID := uuid.New()
	fence := `[{"lat":-22.96,"lng":-43.2},{"lat":-22.96,"lng":-43.19},{"lat":-22.95,"lng":-43.19}]`

	mock.ExpectQuery("SELECT (.+) FROM communities WHERE id =").
		WithArgs(communityID).
		WillReturnRows(communityRows(communityID, fence))

	comm, err := repo.GetCommunity(context.Background(), communityID)

	require.NoError(t, err)
	assert.Equal(t, "vidigal", comm.Name)
	assert.Len(t, comm.Geofence, 3)
	assert.Equal(t, -22.96, comm.Geofence[0].Latitude)
	assert.True(t, comm.HasPolygon())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommunity_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(&models.Config{}, db)

	communityID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM communities WHERE id =").
		WithArgs(communityID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetCommunity(context.Background(), communityID)
	assert.ErrorIs(t, err, community.ErrCommunityNotFound)
}

func TestSetActive_GuardLostRace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(&models.Config{}, db)

	communityID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE communities")).
		WithArgs(true, communityID, false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetActive(context.Background(), communityID, false, true)
	assert.ErrorIs(t, err, community.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetActive_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(&models.Config{}, db)

	communityID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE communities")).
		WithArgs(false, communityID, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetActive(context.Background(), communityID, true, false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActiveDrivers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(&models.Config{}, db)

	communityID := uuid.New()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs(communityID, models.DriverOnline, models.DriverApproved).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountActiveDrivers(context.Background(), communityID)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveCommunity_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommunityRepository(&models.Config{}, db)

	communityID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE communities")).
		WithArgs(communityID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ArchiveCommunity(context.Background(), communityID)
	assert.ErrorIs(t, err, community.ErrCommunityNotFound)
}
