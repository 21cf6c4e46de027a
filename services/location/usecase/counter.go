package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/location"
)

// CountByFence snapshots driver availability for a community. A driver is
// considered only when its status row is countable and its last ping is
// inside the staleness window. Considered drivers land in exactly one of the
// in-fence or out-of-fence buckets.
func (uc *locationUC) CountByFence(ctx context.Context, communityID uuid.UUID) (models.FenceCount, error) {
	positions, err := uc.locationRepo.ListAvailableDrivers(ctx)
	if err != nil {
		return models.FenceCount{}, fmt.Errorf("failed to list available drivers: %w", err)
	}

	now := uc.now()
	window := uc.stalenessWindow()

	var count models.FenceCount
	for _, pos := range positions {
		if now.Sub(pos.Location.Timestamp) > window {
			continue
		}

		status, err := uc.locationRepo.GetDriverStatus(ctx, pos.DriverID)
		if errors.Is(err, location.ErrDriverNotFound) {
			continue
		}
		if err != nil {
			return models.FenceCount{}, fmt.Errorf("failed to check driver status: %w", err)
		}
		if !status.Countable() {
			continue
		}

		res, err := uc.resolver.ResolveMembership(ctx, communityID, pos.Location)
		if err != nil {
			// An unclassifiable driver counts toward neither bucket so a
			// resolver hiccup can never report a phantom in-fence driver.
			logger.Warn("failed to classify driver against fence",
				logger.String("driver_id", pos.DriverID),
				logger.String("community_id", communityID.String()),
				logger.Err(err))
			continue
		}

		count.ConsideredDriverIDs = append(count.ConsideredDriverIDs, pos.DriverID)
		if res.Inside {
			count.InFence++
		} else {
			count.OutOfFence++
		}
	}

	return count, nil
}
