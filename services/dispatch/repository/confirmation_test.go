package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func newConfirmationRepo(t *testing.T) (*ConfirmationRepo, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	repo := NewConfirmationRepository(&models.Config{}, db)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func confirmationRow(token string, passengerID, communityID uuid.UUID, expiresAt time.Time, usedAt *time.Time, rideID *uuid.UUID) *sqlmock.Rows {
	payload := []byte(`{"type":"comunidade","origin":"a","destination":"b","price":18.5,"passenger_lat":-22.95,"passenger_lng":-43.21}`)
	snapshot := []byte(`{"in_fence":0,"out_of_fence":3}`)
	return sqlmock.NewRows([]string{
		"token", "passenger_id", "community_id", "payload", "snapshot",
		"created_at", "expires_at", "used_at", "resulting_ride_id",
	}).AddRow(token, passengerID, communityID, payload, snapshot,
		fixedNow.Add(-time.Minute), expiresAt, usedAt, rideID)
}

func TestIssue_StoresTokenWithTTL(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	passengerID := uuid.New()
	communityID := uuid.New()
	payload := models.ConfirmationPayload{Origin: "a", Destination: "b", Price: 18.5}
	snapshot := models.GeofenceSnapshot{InFence: 0, OutOfFence: 3}

	mock.ExpectExec("INSERT INTO out_of_fence_confirmations").
		WithArgs(sqlmock.AnyArg(), passengerID, communityID, sqlmock.AnyArg(), sqlmock.AnyArg(),
			fixedNow, fixedNow.Add(10*time.Minute)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	confirmation, err := repo.Issue(context.Background(), passengerID, communityID, payload, snapshot, 10*time.Minute)

	require.NoError(t, err)
	assert.Len(t, confirmation.Token, 64)
	assert.Equal(t, fixedNow, confirmation.CreatedAt)
	assert.Equal(t, fixedNow.Add(10*time.Minute), confirmation.ExpiresAt)
	assert.Equal(t, payload, confirmation.Payload)
	assert.Nil(t, confirmation.UsedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeem_FreshTokenReturnsPayload(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	passengerID := uuid.New()
	communityID := uuid.New()
	token := "tok-fresh"

	mock.ExpectQuery("SELECT (.+) FROM out_of_fence_confirmations WHERE token =").
		WithArgs(token).
		WillReturnRows(confirmationRow(token, passengerID, communityID, fixedNow.Add(5*time.Minute), nil, nil))

	result, err := repo.Redeem(context.Background(), token, passengerID)

	require.NoError(t, err)
	assert.Equal(t, models.RedemptionFresh, result.Kind)
	assert.Equal(t, "a", result.Payload.Origin)
	assert.Equal(t, 18.5, result.Payload.Price)
	assert.Equal(t, 3, result.Snapshot.OutOfFence)
	assert.Equal(t, communityID, result.CommunityID)
	assert.Nil(t, result.RideID)
}

func TestRedeem_UnknownToken(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM out_of_fence_confirmations WHERE token =").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"token"}))

	_, err := repo.Redeem(context.Background(), "nope", uuid.New())

	assert.ErrorIs(t, err, dispatch.ErrTokenNotFound)
}

func TestRedeem_WrongPassenger(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	owner := uuid.New()
	token := "tok-owned"
	mock.ExpectQuery("SELECT (.+) FROM out_of_fence_confirmations WHERE token =").
		WithArgs(token).
		WillReturnRows(confirmationRow(token, owner, uuid.New(), fixedNow.Add(5*time.Minute), nil, nil))

	_, err := repo.Redeem(context.Background(), token, uuid.New())

	assert.ErrorIs(t, err, dispatch.ErrTokenOwnership)
}

func TestRedeem_AlreadyUsedReturnsRideID(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	passengerID := uuid.New()
	rideID := uuid.New()
	usedAt := fixedNow.Add(-30 * time.Second)
	token := "tok-used"

	// A consumed token replays even past its expiry.
	mock.ExpectQuery("SELECT (.+) FROM out_of_fence_confirmations WHERE token =").
		WithArgs(token).
		WillReturnRows(confirmationRow(token, passengerID, uuid.New(), fixedNow.Add(-time.Minute), &usedAt, &rideID))

	result, err := repo.Redeem(context.Background(), token, passengerID)

	require.NoError(t, err)
	assert.Equal(t, models.RedemptionAlreadyUsed, result.Kind)
	require.NotNil(t, result.RideID)
	assert.Equal(t, rideID, *result.RideID)
}

func TestRedeem_ExpiredToken(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	passengerID := uuid.New()
	token := "tok-stale"
	mock.ExpectQuery("SELECT (.+) FROM out_of_fence_confirmations WHERE token =").
		WithArgs(token).
		WillReturnRows(confirmationRow(token, passengerID, uuid.New(), fixedNow.Add(-time.Second), nil, nil))

	_, err := repo.Redeem(context.Background(), token, passengerID)

	assert.ErrorIs(t, err, dispatch.ErrTokenExpired)
}

func TestMarkUsed_ConditionalUpdate(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	rideID := uuid.New()
	mock.ExpectExec("UPDATE out_of_fence_confirmations SET used_at =").
		WithArgs(fixedNow, rideID, "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkUsed(context.Background(), "tok", rideID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkUsed_LosesRace(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	mock.ExpectExec("UPDATE out_of_fence_confirmations SET used_at =").
		WithArgs(fixedNow, sqlmock.AnyArg(), "tok").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkUsed(context.Background(), "tok", uuid.New())

	assert.ErrorIs(t, err, dispatch.ErrConcurrentModification)
}

func TestConsumeWithRide_CommitsRideAndToken(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	ride := &models.Ride{
		PassengerID: uuid.New(),
		Type:        models.RideTypeNormal,
		Origin:      "a",
		Destination: "b",
		Price:       18.5,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rides").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE out_of_fence_confirmations SET used_at =").
		WithArgs(fixedNow, sqlmock.AnyArg(), "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.ConsumeWithRide(context.Background(), "tok", ride)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.RideStatusRequested, created.Status)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeWithRide_RollsBackWhenTokenAlreadyConsumed(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	ride := &models.Ride{
		PassengerID: uuid.New(),
		Type:        models.RideTypeNormal,
		Origin:      "a",
		Destination: "b",
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rides").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE out_of_fence_confirmations SET used_at =").
		WithArgs(fixedNow, sqlmock.AnyArg(), "tok").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.ConsumeWithRide(context.Background(), "tok", ride)

	assert.ErrorIs(t, err, dispatch.ErrConcurrentModification)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpired(t *testing.T) {
	repo, mock := newConfirmationRepo(t)

	mock.ExpectExec("DELETE FROM out_of_fence_confirmations").
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.DeleteExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
