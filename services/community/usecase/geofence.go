package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/utils"
)

// ResolveMembership classifies a coordinate against the community geometry.
// When both a polygon and a circle are configured the polygon wins and the
// circle is ignored, even when the circle would have said inside.
func (uc *communityUC) ResolveMembership(ctx context.Context, communityID uuid.UUID, point models.Location) (models.GeofenceResolution, error) {
	if !point.Valid() {
		return models.GeofenceResolution{}, fmt.Errorf("invalid coordinates: lat=%f lng=%f", point.Latitude, point.Longitude)
	}

	comm, err := uc.communityRepo.GetCommunity(ctx, communityID)
	if err != nil {
		return models.GeofenceResolution{}, fmt.Errorf("failed to load community: %w", err)
	}

	return resolveGeometry(comm, point), nil
}

// resolveGeometry is the pure membership check. A community with no usable
// geometry resolves to outside so that dispatch never treats an unfenced
// request as in-fence.
func resolveGeometry(comm *models.Community, point models.Location) models.GeofenceResolution {
	if comm.HasPolygon() {
		return models.GeofenceResolution{
			Inside:       utils.PointInPolygon(point.Latitude, point.Longitude, comm.Geofence),
			GeometryKind: models.GeometryPolygon,
		}
	}

	if comm.HasCircle() {
		dist := utils.HaversineDistanceMeters(point.Latitude, point.Longitude, *comm.CenterLat, *comm.CenterLng)
		return models.GeofenceResolution{
			Inside:       dist <= float64(*comm.RadiusMeters),
			GeometryKind: models.GeometryCircle,
		}
	}

	return models.GeofenceResolution{GeometryKind: models.GeometryNone}
}
