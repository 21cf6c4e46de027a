package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// CommunityRepo defines the interface for community data access
type CommunityRepo interface {
	CreateCommunity(ctx context.Context, c *models.Community) (*models.Community, error)
	GetCommunity(ctx context.Context, communityID uuid.UUID) (*models.Community, error)
	GetCommunityByName(ctx context.Context, name string) (*models.Community, error)
	GetCommunityByPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Community, error)
	UpdateGeometry(ctx context.Context, communityID uuid.UUID, geofence []models.GeoPoint, centerLat, centerLng *float64, radiusMeters *int) error
	ArchiveCommunity(ctx context.Context, communityID uuid.UUID) error
	ListAutoActivationCommunities(ctx context.Context) ([]*models.Community, error)

	// SetActive flips is_active from the expected previous value. Returns
	// ErrStatusConflict when the row no longer matches, which means a
	// concurrent evaluation already applied the change.
	SetActive(ctx context.Context, communityID uuid.UUID, from, to bool) error
	TouchEvaluated(ctx context.Context, communityID uuid.UUID) error
	AppendStatusChange(ctx context.Context, communityID uuid.UUID, change *models.CommunityStatusChange) error
	ListStatusHistory(ctx context.Context, communityID uuid.UUID) ([]*models.CommunityStatusChange, error)

	// CountActiveDrivers counts drivers whose status row makes them
	// countable for the given community.
	CountActiveDrivers(ctx context.Context, communityID uuid.UUID) (int, error)
}
