package location

import (
	"context"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// LocationRepo defines the interface for driver location data access
type LocationRepo interface {
	// StoreDriverLocation records a driver position in the geo pool and the
	// per-driver location hash.
	StoreDriverLocation(ctx context.Context, update models.LocationUpdate) error

	// RemoveDriver takes a driver out of the availability pool
	RemoveDriver(ctx context.Context, driverID string) error

	// ListAvailableDrivers returns every pooled driver with its last known
	// position and ping time.
	ListAvailableDrivers(ctx context.Context) ([]models.DriverPosition, error)

	// GetDriverStatus loads the postgres status row consulted before a
	// driver may be counted.
	GetDriverStatus(ctx context.Context, driverID string) (*models.DriverStatus, error)

	// SetDriverAvailability flips the driver's availability flag
	SetDriverAvailability(ctx context.Context, driverID string, availability models.DriverAvailability) error
}
