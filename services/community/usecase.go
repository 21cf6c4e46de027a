package community

import (
	"context"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// CommunityUC defines the interface for community business logic
type CommunityUC interface {
	// ResolveMembership classifies a coordinate against a community's
	// geometry. Polygon takes precedence over circle; a community with no
	// geometry resolves to not inside.
	ResolveMembership(ctx context.Context, communityID uuid.UUID, point models.Location) (models.GeofenceResolution, error)

	// Evaluate recomputes the active-driver count for one community and
	// applies activation hysteresis.
	Evaluate(ctx context.Context, communityID uuid.UUID) (models.EvaluationResult, error)

	// EvaluateAll runs Evaluate over every auto-activation community.
	EvaluateAll(ctx context.Context) error

	CreateCommunity(ctx context.Context, c *models.Community) (*models.Community, error)
	GetCommunity(ctx context.Context, communityID uuid.UUID) (*models.Community, error)
	UpdateGeometry(ctx context.Context, communityID uuid.UUID, geofence []models.GeoPoint, centerLat, centerLng *float64, radiusMeters *int) error
	ArchiveCommunity(ctx context.Context, communityID uuid.UUID) error
	GetStatusHistory(ctx context.Context, communityID uuid.UUID) ([]*models.CommunityStatusChange, error)
}
