package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// RideRepo defines the interface for ride persistence
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
}

// ConfirmationRepo is the single-use confirmation token store. Redemption
// and MarkUsed together give the at-most-one-ride guarantee: MarkUsed only
// succeeds while used_at is still null, and the loser of a race re-reads the
// winner's ride through Redeem's already-used path.
type ConfirmationRepo interface {
	// Issue mints a cryptographically random token carrying the original
	// request payload and the availability snapshot.
	Issue(ctx context.Context, passengerID, communityID uuid.UUID, payload models.ConfirmationPayload, snapshot models.GeofenceSnapshot, ttl time.Duration) (*models.OutOfFenceConfirmation, error)

	// Redeem validates the token for the passenger. Returns a fresh result
	// carrying the stored payload, or an already-used result carrying the
	// resulting ride ID. Expiry is checked here, never left to a sweep.
	Redeem(ctx context.Context, token string, passengerID uuid.UUID) (*models.RedemptionResult, error)

	// MarkUsed stamps used_at and the resulting ride with a conditional
	// update that succeeds only while used_at is null. Returns
	// ErrConcurrentModification when another redemption won.
	MarkUsed(ctx context.Context, token string, rideID uuid.UUID) error

	// ConsumeWithRide runs the ride insert and the MarkUsed conditional
	// update in one transaction, so at most one ride can ever exist per
	// token even across process crashes.
	ConsumeWithRide(ctx context.Context, token string, ride *models.Ride) (*models.Ride, error)

	// DeleteExpired removes expired unused confirmations and reports how
	// many were collected.
	DeleteExpired(ctx context.Context) (int64, error)
}
