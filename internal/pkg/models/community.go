package models

import (
	"time"

	"github.com/google/uuid"
)

// GeometryKind identifies which geometry source resolved a membership check
type GeometryKind string

const (
	GeometryPolygon GeometryKind = "polygon"
	GeometryCircle  GeometryKind = "circle"
	GeometryNone    GeometryKind = "none"
)

// GeoPoint is a polygon vertex
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Community represents a geofenced neighborhood unit
type Community struct {
	ID                    uuid.UUID  `json:"id" db:"id"`
	Name                  string     `json:"name" db:"name"`
	Description           string     `json:"description" db:"description"`
	IsActive              bool       `json:"is_active" db:"is_active"`
	Archived              bool       `json:"archived" db:"archived"`
	AutoActivation        bool       `json:"auto_activation" db:"auto_activation"`
	MinActiveDrivers      int        `json:"min_active_drivers" db:"min_active_drivers"`
	DeactivationThreshold int        `json:"deactivation_threshold" db:"deactivation_threshold"`
	CenterLat             *float64   `json:"center_lat,omitempty" db:"center_lat"`
	CenterLng             *float64   `json:"center_lng,omitempty" db:"center_lng"`
	RadiusMeters          *int       `json:"radius_meters,omitempty" db:"radius_meters"`
	Geofence              []GeoPoint `json:"geofence,omitempty"`
	LastEvaluatedAt       *time.Time `json:"last_evaluated_at,omitempty" db:"last_evaluated_at"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

// HasPolygon reports whether the community carries a usable polygon fence.
// Fewer than three vertices cannot enclose an area and are ignored.
func (c *Community) HasPolygon() bool {
	return len(c.Geofence) >= 3
}

// HasCircle reports whether the community carries a usable circular fence.
func (c *Community) HasCircle() bool {
	return c.CenterLat != nil && c.CenterLng != nil && c.RadiusMeters != nil && *c.RadiusMeters > 0
}

// GeofenceResolution is the outcome of a membership check
type GeofenceResolution struct {
	Inside       bool         `json:"inside"`
	GeometryKind GeometryKind `json:"geometry_kind"`
}

// CommunityStatusChange records an activation state transition
type CommunityStatusChange struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CommunityID  uuid.UUID `json:"community_id" db:"community_id"`
	FromIsActive bool      `json:"from_is_active" db:"from_is_active"`
	ToIsActive   bool      `json:"to_is_active" db:"to_is_active"`
	DriverCount  int       `json:"driver_count" db:"driver_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// EvaluationResult reports one auto-activation evaluation
type EvaluationResult struct {
	CommunityID uuid.UUID `json:"community_id"`
	DriverCount int       `json:"driver_count"`
	WasActive   bool      `json:"was_active"`
	IsActive    bool      `json:"is_active"`
	Changed     bool      `json:"changed"`
}
