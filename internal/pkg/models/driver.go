package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverAvailability represents a driver's self-reported availability
type DriverAvailability string

const (
	DriverOnline  DriverAvailability = "online"
	DriverOffline DriverAvailability = "offline"
)

// DriverApprovalStatus represents the admin verification state of a driver
type DriverApprovalStatus string

const (
	DriverApproved DriverApprovalStatus = "approved"
	DriverPending  DriverApprovalStatus = "pending"
	DriverRejected DriverApprovalStatus = "rejected"
)

// DriverStatus is the availability record consulted by the counter.
// A driver is countable only when online, approved and not suspended.
type DriverStatus struct {
	DriverID     string               `json:"driver_id" db:"driver_id"`
	CommunityID  *uuid.UUID           `json:"community_id,omitempty" db:"community_id"`
	Availability DriverAvailability   `json:"availability" db:"availability"`
	Approval     DriverApprovalStatus `json:"approval" db:"approval"`
	Suspended    bool                 `json:"suspended" db:"suspended"`
	UpdatedAt    time.Time            `json:"updated_at" db:"updated_at"`
}

// Countable reports whether the driver may enter availability counts.
func (s DriverStatus) Countable() bool {
	return s.Availability == DriverOnline && s.Approval == DriverApproved && !s.Suspended
}

// DriverPosition is a driver's last known non-stale location
type DriverPosition struct {
	DriverID string   `json:"driver_id"`
	Location Location `json:"location"`
	Geohash  string   `json:"geohash,omitempty"`
}

// FenceCount is the in/out-of-fence availability snapshot for a community
type FenceCount struct {
	InFence             int      `json:"in_fence"`
	OutOfFence          int      `json:"out_of_fence"`
	ConsideredDriverIDs []string `json:"considered_driver_ids,omitempty"`
}
