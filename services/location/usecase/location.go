package usecase

import (
	"context"
	"fmt"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/location"
)

// UpdateDriverLocation processes a driver beacon ping. Active pings refresh
// the driver's pooled position; inactive pings withdraw the driver.
func (uc *locationUC) UpdateDriverLocation(ctx context.Context, update models.LocationUpdate) error {
	if update.DriverID == "" {
		return fmt.Errorf("driver ID is required")
	}

	if !update.IsActive {
		if err := uc.locationRepo.RemoveDriver(ctx, update.DriverID); err != nil {
			return fmt.Errorf("failed to withdraw driver: %w", err)
		}
		if err := uc.locationRepo.SetDriverAvailability(ctx, update.DriverID, models.DriverOffline); err != nil {
			return fmt.Errorf("failed to mark driver offline: %w", err)
		}
		logger.Info("driver withdrawn from availability pool",
			logger.String("driver_id", update.DriverID))
		return nil
	}

	if !update.Location.Valid() {
		return location.ErrInvalidLocation
	}
	if update.Location.Timestamp.IsZero() {
		update.Location.Timestamp = uc.now()
	}

	if err := uc.locationRepo.StoreDriverLocation(ctx, update); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	if err := uc.locationRepo.SetDriverAvailability(ctx, update.DriverID, models.DriverOnline); err != nil {
		return fmt.Errorf("failed to mark driver online: %w", err)
	}
	return nil
}
