package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// DispatchUC defines the interface for ride dispatch business logic
type DispatchUC interface {
	// RequestRide evaluates a ride request. When the request carries a
	// confirmation token it is treated as a redemption attempt instead of a
	// fresh evaluation.
	RequestRide(ctx context.Context, req models.RideRequest) (*models.DispatchResult, error)

	// GetRide returns a ride by ID
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	// SweepExpiredConfirmations garbage-collects expired unused tokens
	SweepExpiredConfirmations(ctx context.Context) error
}

// CommunityDirectory resolves community records for dispatch decisions. The
// community service provides the production implementation.
type CommunityDirectory interface {
	GetCommunityByPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Community, error)
	GetCommunityByName(ctx context.Context, name string) (*models.Community, error)
}

// AvailabilityCounter snapshots driver availability for a community. The
// location service provides the production implementation.
type AvailabilityCounter interface {
	CountByFence(ctx context.Context, communityID uuid.UUID) (models.FenceCount, error)
}
