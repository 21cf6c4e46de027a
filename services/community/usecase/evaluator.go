package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
)

// Evaluate recomputes the countable-driver total for one community and
// applies hysteresis: activation requires count >= MinActiveDrivers,
// deactivation requires count <= DeactivationThreshold, and counts in the
// dead zone between them leave the current state untouched.
func (uc *communityUC) Evaluate(ctx context.Context, communityID uuid.UUID) (models.EvaluationResult, error) {
	comm, err := uc.communityRepo.GetCommunity(ctx, communityID)
	if err != nil {
		return models.EvaluationResult{}, fmt.Errorf("failed to load community: %w", err)
	}

	count, err := uc.communityRepo.CountActiveDrivers(ctx, communityID)
	if err != nil {
		return models.EvaluationResult{}, fmt.Errorf("failed to count active drivers: %w", err)
	}

	result := models.EvaluationResult{
		CommunityID: communityID,
		DriverCount: count,
		WasActive:   comm.IsActive,
		IsActive:    comm.IsActive,
	}

	target := comm.IsActive
	switch {
	case comm.Archived:
		// Archived communities never activate, whatever the count says.
		target = false
	case !comm.IsActive && comm.AutoActivation && count >= comm.MinActiveDrivers:
		target = true
	case comm.IsActive && count <= comm.DeactivationThreshold:
		target = false
	}

	if target != comm.IsActive {
		if err := uc.applyStatusChange(ctx, comm, target, count, &result); err != nil {
			return models.EvaluationResult{}, err
		}
	}

	// The evaluation timestamp moves even when nothing changed, so operators
	// can tell a quiet community from a stuck evaluator.
	if err := uc.communityRepo.TouchEvaluated(ctx, communityID); err != nil {
		logger.Warn("failed to touch community evaluation timestamp",
			logger.String("community_id", communityID.String()),
			logger.Err(err))
	}

	return result, nil
}

func (uc *communityUC) applyStatusChange(ctx context.Context, comm *models.Community, target bool, count int, result *models.EvaluationResult) error {
	err := uc.communityRepo.SetActive(ctx, comm.ID, comm.IsActive, target)
	if errors.Is(err, community.ErrStatusConflict) {
		// A concurrent evaluation already flipped the row. Its run owns the
		// history entry and the event, so this one reports no change.
		logger.Info("community status already changed by concurrent evaluation",
			logger.String("community_id", comm.ID.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to update community status: %w", err)
	}

	result.IsActive = target
	result.Changed = true

	change := &models.CommunityStatusChange{
		CommunityID:  comm.ID,
		FromIsActive: comm.IsActive,
		ToIsActive:   target,
		DriverCount:  count,
	}
	if err := uc.communityRepo.AppendStatusChange(ctx, comm.ID, change); err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}

	uc.publishStatusEvent(ctx, *result)
	return nil
}

func (uc *communityUC) publishStatusEvent(ctx context.Context, result models.EvaluationResult) {
	var err error
	if result.IsActive {
		err = uc.communityGW.PublishCommunityActivated(ctx, result)
	} else {
		err = uc.communityGW.PublishCommunityDeactivated(ctx, result)
	}
	if err != nil {
		logger.Warn("failed to publish community status event",
			logger.String("community_id", result.CommunityID.String()),
			logger.Err(err))
	}
}

// EvaluateAll sweeps every auto-activation community. Individual failures
// are logged and do not stop the sweep.
func (uc *communityUC) EvaluateAll(ctx context.Context) error {
	comms, err := uc.communityRepo.ListAutoActivationCommunities(ctx)
	if err != nil {
		return fmt.Errorf("failed to list auto-activation communities: %w", err)
	}

	for _, comm := range comms {
		result, err := uc.Evaluate(ctx, comm.ID)
		if err != nil {
			logger.Error("community evaluation failed",
				logger.String("community_id", comm.ID.String()),
				logger.Err(err))
			continue
		}
		if result.Changed {
			logger.Info("community activation state changed",
				logger.String("community_id", comm.ID.String()),
				logger.Bool("is_active", result.IsActive),
				logger.Int("driver_count", result.DriverCount))
		}
	}
	return nil
}
