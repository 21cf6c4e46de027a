package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
	"github.com/usbtecnok/kaviar-v2-sub004/services/dispatch"
)

// RequestRide is the dispatch entry point. A request carrying a confirmation
// token is a redemption attempt; anything else is a fresh evaluation.
func (uc *dispatchUC) RequestRide(ctx context.Context, req models.RideRequest) (*models.DispatchResult, error) {
	passengerID, err := uuid.Parse(req.PassengerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid passenger ID", dispatch.ErrValidation)
	}

	if req.ConfirmationToken != "" {
		return uc.redeemConfirmation(ctx, passengerID, req.ConfirmationToken)
	}

	if req.Origin == "" || req.Destination == "" {
		return nil, fmt.Errorf("%w: origin and destination are required", dispatch.ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", dispatch.ErrValidation)
	}

	if req.Type != models.RideTypeComunidade {
		return uc.createPlainRide(ctx, passengerID, req)
	}

	return uc.evaluateCommunityRide(ctx, passengerID, req)
}

// createPlainRide handles ride types that carry no geofence gating
func (uc *dispatchUC) createPlainRide(ctx context.Context, passengerID uuid.UUID, req models.RideRequest) (*models.DispatchResult, error) {
	ride := &models.Ride{
		PassengerID: passengerID,
		Type:        req.Type,
		Origin:      req.Origin,
		Destination: req.Destination,
		Price:       req.Price,
	}

	created, err := uc.rideRepo.CreateRide(ctx, ride)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	uc.publishRideEvents(ctx, created)

	return &models.DispatchResult{
		Success: true,
		Outcome: models.OutcomeRideCreated,
		Ride:    created,
	}, nil
}

// evaluateCommunityRide runs the fence evaluation for a comunidade request
func (uc *dispatchUC) evaluateCommunityRide(ctx context.Context, passengerID uuid.UUID, req models.RideRequest) (*models.DispatchResult, error) {
	if req.PassengerLat == nil || req.PassengerLng == nil {
		return nil, fmt.Errorf("%w: coordinates are required for community rides", dispatch.ErrValidation)
	}
	point := models.Location{Latitude: *req.PassengerLat, Longitude: *req.PassengerLng}
	if !point.Valid() {
		return nil, fmt.Errorf("%w: coordinates out of range", dispatch.ErrValidation)
	}

	comm, err := uc.communities.GetCommunityByPassenger(ctx, passengerID)
	if errors.Is(err, community.ErrCommunityNotFound) {
		return nil, dispatch.ErrNoCommunityAssigned
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve passenger community: %w", err)
	}
	if comm.Archived || !comm.IsActive {
		return nil, dispatch.ErrCommunityInactive
	}

	count, err := uc.counter.CountByFence(ctx, comm.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count drivers: %w", err)
	}

	if count.InFence > 0 {
		return uc.createInFenceRide(ctx, passengerID, comm, req, count)
	}

	if count.OutOfFence == 0 {
		return nil, dispatch.ErrNoDriversAvailable
	}

	if uc.policy.IsSensitive(comm.Name) {
		if err := uc.checkSensitiveFallback(ctx, comm); err != nil {
			return nil, err
		}
	}

	return uc.issueConfirmation(ctx, passengerID, comm, req, count)
}

func (uc *dispatchUC) createInFenceRide(ctx context.Context, passengerID uuid.UUID, comm *models.Community, req models.RideRequest, count models.FenceCount) (*models.DispatchResult, error) {
	ride := &models.Ride{
		PassengerID:         passengerID,
		CommunityID:         &comm.ID,
		Type:                models.RideTypeComunidade,
		Origin:              req.Origin,
		Destination:         req.Destination,
		Price:               req.Price,
		FallbackOutOfFence:  false,
		DriversInFenceCount: count.InFence,
	}

	created, err := uc.rideRepo.CreateRide(ctx, ride)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	uc.publishRideEvents(ctx, created)

	return &models.DispatchResult{
		Success: true,
		Outcome: models.OutcomeInFenceOK,
		Ride:    created,
		GeofenceInfo: &models.GeofenceInfo{
			InFence:    count.InFence,
			OutOfFence: count.OutOfFence,
		},
	}, nil
}

// checkSensitiveFallback applies the stricter tier for sensitive
// neighborhoods: either fallback is disabled outright, or it is offered only
// when a configured neighbor community currently holds an in-fence driver.
func (uc *dispatchUC) checkSensitiveFallback(ctx context.Context, comm *models.Community) error {
	if uc.policy.FallbackMode() == models.SensitiveFallbackBlocked {
		return dispatch.ErrSensitiveFallbackUnavailable
	}

	neighbors := uc.policy.AllowedNeighbors(comm.Name)
	if len(neighbors) == 0 {
		return dispatch.ErrSensitiveFallbackUnavailable
	}

	for _, name := range neighbors {
		neighbor, err := uc.communities.GetCommunityByName(ctx, name)
		if errors.Is(err, community.ErrCommunityNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to resolve neighbor community: %w", err)
		}

		count, err := uc.counter.CountByFence(ctx, neighbor.ID)
		if err != nil {
			return fmt.Errorf("failed to count neighbor drivers: %w", err)
		}
		if count.InFence > 0 {
			return nil
		}
	}

	return dispatch.ErrNoDriversAvailable
}

func (uc *dispatchUC) issueConfirmation(ctx context.Context, passengerID uuid.UUID, comm *models.Community, req models.RideRequest, count models.FenceCount) (*models.DispatchResult, error) {
	payload := models.ConfirmationPayload{
		Type:         req.Type,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Price:        req.Price,
		PassengerLat: *req.PassengerLat,
		PassengerLng: *req.PassengerLng,
	}
	snapshot := models.GeofenceSnapshot{
		InFence:    count.InFence,
		OutOfFence: count.OutOfFence,
	}

	confirmation, err := uc.confirmationRepo.Issue(ctx, passengerID, comm.ID, payload, snapshot, uc.confirmationTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to issue confirmation: %w", err)
	}

	if err := uc.dispatchGW.PublishConfirmationIssued(ctx, confirmation); err != nil {
		logger.Warn("failed to publish confirmation issued event",
			logger.String("passenger_id", passengerID.String()),
			logger.Err(err))
	}

	return &models.DispatchResult{
		Success:              false,
		Outcome:              models.OutcomeRequiresConfirmation,
		RequiresConfirmation: true,
		ConfirmationToken:    confirmation.Token,
		ExpiresAt:            &confirmation.ExpiresAt,
		GeofenceInfo: &models.GeofenceInfo{
			InFence:    count.InFence,
			OutOfFence: count.OutOfFence,
		},
	}, nil
}

// publishRideEvents fires the ride-created and fee-init events. Both are
// fire-and-forget: downstream accounting failures never roll back a ride.
func (uc *dispatchUC) publishRideEvents(ctx context.Context, ride *models.Ride) {
	if err := uc.dispatchGW.PublishRideCreated(ctx, ride); err != nil {
		logger.Warn("failed to publish ride created event",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}

	event := models.FeeInitEvent{
		RideID:      ride.ID,
		RideType:    ride.Type,
		CommunityID: ride.CommunityID,
	}
	if err := uc.dispatchGW.PublishFeeInit(ctx, event); err != nil {
		logger.Warn("failed to publish fee init event",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}
