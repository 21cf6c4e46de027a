package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
)

// RideRepo implements the ride repository interface
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	now func() time.Time
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
		now: time.Now,
	}
}

// insertRide writes a ride row. It runs against either the plain connection
// or a transaction, so the confirmation store can bundle a ride insert with
// its conditional token update.
func insertRide(ctx context.Context, e sqlx.ExtContext, ride *models.Ride, now time.Time) error {
	if ride.ID == uuid.Nil {
		ride.ID = uuid.New()
	}
	if ride.Status == "" {
		ride.Status = models.RideStatusRequested
	}
	ride.CreatedAt = now
	ride.UpdatedAt = now

	query := `
		INSERT INTO rides (
			id, passenger_id, driver_id, community_id, type,
			origin, destination, price, status,
			fallback_out_of_fence, fallback_reason, passenger_confirmed_at,
			drivers_in_fence_count, created_at, updated_at
		) VALUES (
			:id, :passenger_id, :driver_id, :community_id, :type,
			:origin, :destination, :price, :status,
			:fallback_out_of_fence, :fallback_reason, :passenger_confirmed_at,
			:drivers_in_fence_count, :created_at, :updated_at
		)
	`
	if _, err := sqlx.NamedExecContext(ctx, e, query, ride); err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}
	return nil
}

// CreateRide inserts a new ride
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	if err := insertRide(ctx, r.db, ride, r.now()); err != nil {
		return nil, err
	}
	return ride, nil
}

// GetRide returns a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		SELECT id, passenger_id, driver_id, community_id, type,
			origin, destination, price, status,
			fallback_out_of_fence, fallback_reason, passenger_confirmed_at,
			drivers_in_fence_count, created_at, updated_at
		FROM rides
		WHERE id = $1
	`

	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, query, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dispatch.ErrRideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}
