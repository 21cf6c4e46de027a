package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// LocationUC defines the interface for location business logic
type LocationUC interface {
	// UpdateDriverLocation processes a driver beacon ping. An inactive ping
	// removes the driver from the availability pool.
	UpdateDriverLocation(ctx context.Context, update models.LocationUpdate) error

	// CountByFence snapshots driver availability for a community, split
	// into in-fence and out-of-fence buckets. Drivers with stale locations
	// count toward neither bucket.
	CountByFence(ctx context.Context, communityID uuid.UUID) (models.FenceCount, error)
}

// FenceResolver classifies a coordinate against a community's geometry. The
// community service provides the production implementation.
type FenceResolver interface {
	ResolveMembership(ctx context.Context, communityID uuid.UUID, point models.Location) (models.GeofenceResolution, error)
}
