package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// CreateCommunity registers a new community. New communities start inactive
// until an evaluation or an operator activates them.
func (uc *communityUC) CreateCommunity(ctx context.Context, c *models.Community) (*models.Community, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("community name is required")
	}
	if c.MinActiveDrivers < 0 || c.DeactivationThreshold < 0 {
		return nil, fmt.Errorf("activation thresholds must not be negative")
	}
	if c.MinActiveDrivers > 0 && c.DeactivationThreshold >= c.MinActiveDrivers {
		return nil, fmt.Errorf("deactivation threshold must be below minimum active drivers")
	}
	if len(c.Geofence) > 0 && len(c.Geofence) < 3 {
		return nil, fmt.Errorf("polygon fence requires at least three vertices")
	}

	c.IsActive = false
	c.Archived = false
	return uc.communityRepo.CreateCommunity(ctx, c)
}

// GetCommunity returns a community by ID
func (uc *communityUC) GetCommunity(ctx context.Context, communityID uuid.UUID) (*models.Community, error) {
	return uc.communityRepo.GetCommunity(ctx, communityID)
}

// UpdateGeometry replaces the community's fence geometry
func (uc *communityUC) UpdateGeometry(ctx context.Context, communityID uuid.UUID, geofence []models.GeoPoint, centerLat, centerLng *float64, radiusMeters *int) error {
	if len(geofence) > 0 && len(geofence) < 3 {
		return fmt.Errorf("polygon fence requires at least three vertices")
	}
	if radiusMeters != nil && *radiusMeters <= 0 {
		return fmt.Errorf("circle radius must be positive")
	}
	return uc.communityRepo.UpdateGeometry(ctx, communityID, geofence, centerLat, centerLng, radiusMeters)
}

// ArchiveCommunity retires a community. Archival also deactivates it so that
// dispatch stops routing comunidade rides to it immediately.
func (uc *communityUC) ArchiveCommunity(ctx context.Context, communityID uuid.UUID) error {
	return uc.communityRepo.ArchiveCommunity(ctx, communityID)
}

// GetStatusHistory returns the recorded activation transitions, newest first
func (uc *communityUC) GetStatusHistory(ctx context.Context, communityID uuid.UUID) ([]*models.CommunityStatusChange, error) {
	return uc.communityRepo.ListStatusHistory(ctx, communityID)
}
