package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
)

// redeemConfirmation drives the second half of the fallback flow. A fresh
// redemption creates the downgraded ride; a replay returns the ride created
// by the first redemption.
func (uc *dispatchUC) redeemConfirmation(ctx context.Context, passengerID uuid.UUID, token string) (*models.DispatchResult, error) {
	result, err := uc.confirmationRepo.Redeem(ctx, token, passengerID)
	if err != nil {
		return nil, err
	}

	if result.Kind == models.RedemptionAlreadyUsed {
		return uc.replayExistingRide(ctx, result)
	}

	now := uc.now()
	reason := models.FallbackNoDriversInFence
	communityID := result.CommunityID

	// The stored payload is replayed verbatim, but the classification is
	// forced to normal: the fallback forever reclassifies the ride.
	ride := &models.Ride{
		PassengerID:          passengerID,
		CommunityID:          &communityID,
		Type:                 models.RideTypeNormal,
		Origin:               result.Payload.Origin,
		Destination:          result.Payload.Destination,
		Price:                result.Payload.Price,
		FallbackOutOfFence:   true,
		FallbackReason:       &reason,
		PassengerConfirmedAt: &now,
		DriversInFenceCount:  0,
	}

	created, err := uc.confirmationRepo.ConsumeWithRide(ctx, token, ride)
	if errors.Is(err, dispatch.ErrConcurrentModification) {
		// A concurrent redemption consumed the token after our read. The
		// winner's ride is the one that exists; hand it back as a replay.
		replay, redeemErr := uc.confirmationRepo.Redeem(ctx, token, passengerID)
		if redeemErr != nil {
			return nil, redeemErr
		}
		return uc.replayExistingRide(ctx, replay)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback ride: %w", err)
	}

	logger.Info("fallback ride created from confirmation",
		logger.String("ride_id", created.ID.String()),
		logger.String("passenger_id", passengerID.String()))

	uc.publishRideEvents(ctx, created)

	return &models.DispatchResult{
		Success: true,
		Outcome: models.OutcomeFallbackRideCreated,
		Ride:    created,
	}, nil
}

func (uc *dispatchUC) replayExistingRide(ctx context.Context, result *models.RedemptionResult) (*models.DispatchResult, error) {
	if result.RideID == nil {
		return nil, dispatch.ErrConcurrentModification
	}

	ride, err := uc.rideRepo.GetRide(ctx, *result.RideID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing ride: %w", err)
	}

	return &models.DispatchResult{
		Success: true,
		Outcome: models.OutcomeReplayReturned,
		Ride:    ride,
	}, nil
}

// GetRide returns a ride by ID
func (uc *dispatchUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.rideRepo.GetRide(ctx, rideID)
}

// SweepExpiredConfirmations garbage-collects expired unused tokens
func (uc *dispatchUC) SweepExpiredConfirmations(ctx context.Context) error {
	deleted, err := uc.confirmationRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep expired confirmations: %w", err)
	}
	if deleted > 0 {
		logger.Info("expired confirmations collected",
			logger.Int64("deleted", deleted))
	}
	return nil
}
