package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
)

// ConfirmationRepo implements the confirmation token store
type ConfirmationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	now func() time.Time
}

// NewConfirmationRepository creates a new confirmation repository
func NewConfirmationRepository(cfg *models.Config, db *sqlx.DB) *ConfirmationRepo {
	return &ConfirmationRepo{
		cfg: cfg,
		db:  db,
		now: time.Now,
	}
}

type confirmationDTO struct {
	Token           string       `db:"token"`
	PassengerID     uuid.UUID    `db:"passenger_id"`
	CommunityID     uuid.UUID    `db:"community_id"`
	Payload         []byte       `db:"payload"`
	Snapshot        []byte       `db:"snapshot"`
	CreatedAt       time.Time    `db:"created_at"`
	ExpiresAt       time.Time    `db:"expires_at"`
	UsedAt          sql.NullTime `db:"used_at"`
	ResultingRideID *uuid.UUID   `db:"resulting_ride_id"`
}

// generateToken returns a 64 character hex token from a secure random source
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate confirmation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue mints a single-use confirmation token
func (r *ConfirmationRepo) Issue(ctx context.Context, passengerID, communityID uuid.UUID, payload models.ConfirmationPayload, snapshot models.GeofenceSnapshot, ttl time.Duration) (*models.OutOfFenceConfirmation, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode confirmation payload: %w", err)
	}
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode geofence snapshot: %w", err)
	}

	createdAt := r.now()
	expiresAt := createdAt.Add(ttl)

	query := `
		INSERT INTO out_of_fence_confirmations (
			token, passenger_id, community_id, payload, snapshot,
			created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query,
		token, passengerID, communityID, payloadJSON, snapshotJSON, createdAt, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to store confirmation: %w", err)
	}

	return &models.OutOfFenceConfirmation{
		Token:       token,
		PassengerID: passengerID,
		CommunityID: communityID,
		Payload:     payload,
		Snapshot:    snapshot,
		CreatedAt:   createdAt,
		ExpiresAt:   expiresAt,
	}, nil
}

// Redeem validates a token for the passenger and classifies the redemption.
// Expiry is checked against the injected clock so redemption never depends
// on the garbage-collection sweep having run.
func (r *ConfirmationRepo) Redeem(ctx context.Context, token string, passengerID uuid.UUID) (*models.RedemptionResult, error) {
	query := `
		SELECT token, passenger_id, community_id, payload, snapshot,
			created_at, expires_at, used_at, resulting_ride_id
		FROM out_of_fence_confirmations
		WHERE token = $1
	`

	var dto confirmationDTO
	err := r.db.GetContext(ctx, &dto, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dispatch.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load confirmation: %w", err)
	}

	if dto.PassengerID != passengerID {
		return nil, dispatch.ErrTokenOwnership
	}

	if dto.UsedAt.Valid {
		return &models.RedemptionResult{
			Kind:        models.RedemptionAlreadyUsed,
			RideID:      dto.ResultingRideID,
			CommunityID: dto.CommunityID,
		}, nil
	}

	if r.now().After(dto.ExpiresAt) {
		return nil, dispatch.ErrTokenExpired
	}

	var payload models.ConfirmationPayload
	if err := json.Unmarshal(dto.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode confirmation payload: %w", err)
	}
	var snapshot models.GeofenceSnapshot
	if err := json.Unmarshal(dto.Snapshot, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode geofence snapshot: %w", err)
	}

	return &models.RedemptionResult{
		Kind:        models.RedemptionFresh,
		Payload:     payload,
		Snapshot:    snapshot,
		CommunityID: dto.CommunityID,
	}, nil
}

// MarkUsed stamps the token used with a conditional update. The used_at
// guard makes concurrent redemptions race safely: exactly one caller
// succeeds, every other caller gets ErrConcurrentModification and re-reads
// the winner's ride through Redeem.
func (r *ConfirmationRepo) MarkUsed(ctx context.Context, token string, rideID uuid.UUID) error {
	query := `
		UPDATE out_of_fence_confirmations
		SET used_at = $1, resulting_ride_id = $2
		WHERE token = $3 AND used_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, r.now(), rideID, token)
	if err != nil {
		return fmt.Errorf("failed to mark confirmation used: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return dispatch.ErrConcurrentModification
	}
	return nil
}

// ConsumeWithRide creates the fallback ride and stamps the token used in a
// single transaction, so a crash can never leave a ride without a consumed
// token or the other way round. When the conditional update hits zero rows a
// concurrent redemption already consumed the token; the ride insert rolls
// back and ErrConcurrentModification is returned.
func (r *ConfirmationRepo) ConsumeWithRide(ctx context.Context, token string, ride *models.Ride) (*models.Ride, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := r.now()
	if err := insertRide(ctx, tx, ride, now); err != nil {
		return nil, err
	}

	query := `
		UPDATE out_of_fence_confirmations
		SET used_at = $1, resulting_ride_id = $2
		WHERE token = $3 AND used_at IS NULL
	`
	result, err := tx.ExecContext(ctx, query, now, ride.ID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to mark confirmation used: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return nil, dispatch.ErrConcurrentModification
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit redemption: %w", err)
	}
	return ride, nil
}

// DeleteExpired garbage-collects expired unused confirmations
func (r *ConfirmationRepo) DeleteExpired(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM out_of_fence_confirmations
		WHERE used_at IS NULL AND expires_at < $1
	`
	result, err := r.db.ExecContext(ctx, query, r.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired confirmations: %w", err)
	}
	return result.RowsAffected()
}
