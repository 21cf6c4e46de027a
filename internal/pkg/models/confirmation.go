package models

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationPayload is the original ride-request parameters carried by an
// out-of-fence confirmation, replayed verbatim at redemption time.
type ConfirmationPayload struct {
	Type         RideType `json:"type"`
	Origin       string   `json:"origin"`
	Destination  string   `json:"destination"`
	Price        float64  `json:"price"`
	PassengerLat float64  `json:"passenger_lat"`
	PassengerLng float64  `json:"passenger_lng"`
}

// GeofenceSnapshot captures driver counts at confirmation issuance
type GeofenceSnapshot struct {
	InFence    int `json:"in_fence"`
	OutOfFence int `json:"out_of_fence"`
}

// OutOfFenceConfirmation is a single-use, time-boxed credential for a
// passenger's pending acceptance of a fallback ride.
type OutOfFenceConfirmation struct {
	Token           string              `json:"token" db:"token"`
	PassengerID     uuid.UUID           `json:"passenger_id" db:"passenger_id"`
	CommunityID     uuid.UUID           `json:"community_id" db:"community_id"`
	Payload         ConfirmationPayload `json:"payload"`
	Snapshot        GeofenceSnapshot    `json:"snapshot"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	ExpiresAt       time.Time           `json:"expires_at" db:"expires_at"`
	UsedAt          *time.Time          `json:"used_at,omitempty" db:"used_at"`
	ResultingRideID *uuid.UUID          `json:"resulting_ride_id,omitempty" db:"resulting_ride_id"`
}

// RedemptionKind tags the outcome of a token redemption
type RedemptionKind string

const (
	RedemptionFresh       RedemptionKind = "fresh"
	RedemptionAlreadyUsed RedemptionKind = "already-used"
)

// RedemptionResult is returned by the confirmation store on redeem
type RedemptionResult struct {
	Kind     RedemptionKind      `json:"kind"`
	Payload  ConfirmationPayload `json:"payload,omitempty"`
	Snapshot GeofenceSnapshot    `json:"snapshot,omitempty"`
	// RideID is set only for already-used replays.
	RideID      *uuid.UUID `json:"ride_id,omitempty"`
	CommunityID uuid.UUID  `json:"community_id"`
}
