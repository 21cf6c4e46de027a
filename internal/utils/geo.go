package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

// Earth's mean radius in meters
const earthRadiusMeters = 6371000.0

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// HaversineDistanceMeters calculates the great-circle distance between two
// coordinates in meters on a spherical earth.
func HaversineDistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// PointInPolygon reports whether the point lies inside or on the boundary of
// the polygon. Uses ray casting with an explicit on-edge check so boundary
// points count as inside (closed region).
func PointInPolygon(lat, lng float64, polygon []models.GeoPoint) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := polygon[i]
		vj := polygon[j]

		if onSegment(lat, lng, vi, vj) {
			return true
		}

		intersects := (vi.Latitude > lat) != (vj.Latitude > lat) &&
			lng < (vj.Longitude-vi.Longitude)*(lat-vi.Latitude)/(vj.Latitude-vi.Latitude)+vi.Longitude
		if intersects {
			inside = !inside
		}
	}

	return inside
}

// onSegment reports whether the point lies on the segment between a and b,
// within a small tolerance for floating point noise.
func onSegment(lat, lng float64, a, b models.GeoPoint) bool {
	const eps = 1e-9

	cross := (b.Latitude-a.Latitude)*(lng-a.Longitude) - (b.Longitude-a.Longitude)*(lat-a.Latitude)
	if math.Abs(cross) > eps {
		return false
	}

	if lat < math.Min(a.Latitude, b.Latitude)-eps || lat > math.Max(a.Latitude, b.Latitude)+eps {
		return false
	}
	if lng < math.Min(a.Longitude, b.Longitude)-eps || lng > math.Max(a.Longitude, b.Longitude)+eps {
		return false
	}

	return true
}
