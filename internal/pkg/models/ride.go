package models

import (
	"time"

	"github.com/google/uuid"
)

// RideType represents the requested ride classification
type RideType string

const (
	RideTypeNormal     RideType = "normal"
	RideTypeCombo      RideType = "combo"
	RideTypeComunidade RideType = "comunidade"
	RideTypeTourism    RideType = "tourism"
)

// RideStatus represents the lifecycle status of a ride
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusOngoing   RideStatus = "ongoing"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// FallbackReason explains why a community ride was downgraded
type FallbackReason string

const (
	FallbackNoDriversInFence FallbackReason = "NO_DRIVERS_IN_FENCE"
)

// Ride represents a ride record
type Ride struct {
	ID                   uuid.UUID       `json:"ride_id" db:"id"`
	PassengerID          uuid.UUID       `json:"passenger_id" db:"passenger_id"`
	DriverID             *uuid.UUID      `json:"driver_id,omitempty" db:"driver_id"`
	CommunityID          *uuid.UUID      `json:"community_id,omitempty" db:"community_id"`
	Type                 RideType        `json:"type" db:"type"`
	Origin               string          `json:"origin" db:"origin"`
	Destination          string          `json:"destination" db:"destination"`
	Price                float64         `json:"price" db:"price"`
	Status               RideStatus      `json:"status" db:"status"`
	FallbackOutOfFence   bool            `json:"fallback_out_of_fence" db:"fallback_out_of_fence"`
	FallbackReason       *FallbackReason `json:"fallback_reason,omitempty" db:"fallback_reason"`
	PassengerConfirmedAt *time.Time      `json:"passenger_confirmed_at,omitempty" db:"passenger_confirmed_at"`
	DriversInFenceCount  int             `json:"drivers_in_fence_count" db:"drivers_in_fence_count"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
}

// RideRequest is the dispatch input. When ConfirmationToken is set the
// request is a redemption of a previously issued out-of-fence confirmation.
type RideRequest struct {
	PassengerID       string   `json:"passenger_id"`
	Type              RideType `json:"type"`
	Origin            string   `json:"origin"`
	Destination       string   `json:"destination"`
	Price             float64  `json:"price"`
	PassengerLat      *float64 `json:"passenger_lat,omitempty"`
	PassengerLng      *float64 `json:"passenger_lng,omitempty"`
	ConfirmationToken string   `json:"confirmation_token,omitempty"`
}

// DispatchOutcome enumerates the decision engine's terminal states for one
// request attempt.
type DispatchOutcome string

const (
	OutcomeInFenceOK            DispatchOutcome = "IN_FENCE_OK"
	OutcomeRequiresConfirmation DispatchOutcome = "REQUIRES_CONFIRMATION"
	OutcomeBlocked              DispatchOutcome = "BLOCKED"
	OutcomeFallbackRideCreated  DispatchOutcome = "FALLBACK_RIDE_CREATED"
	OutcomeReplayReturned       DispatchOutcome = "REPLAY_RETURNED"
	// OutcomeRideCreated is the plain path for ride types that carry no
	// geofence gating.
	OutcomeRideCreated DispatchOutcome = "RIDE_CREATED"
)

// FeeInitEvent kicks off fee and bonus accounting for a created ride
type FeeInitEvent struct {
	RideID      uuid.UUID  `json:"ride_id"`
	RideType    RideType   `json:"ride_type"`
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
}

// GeofenceInfo is the driver-count snapshot returned to the caller
type GeofenceInfo struct {
	InFence    int `json:"in_fence"`
	OutOfFence int `json:"out_of_fence"`
}

// DispatchResult is the decision engine output for one request attempt
type DispatchResult struct {
	Success              bool            `json:"success"`
	Outcome              DispatchOutcome `json:"outcome"`
	Ride                 *Ride           `json:"ride,omitempty"`
	RequiresConfirmation bool            `json:"requires_confirmation,omitempty"`
	ConfirmationToken    string          `json:"confirmation_token,omitempty"`
	ExpiresAt            *time.Time      `json:"expires_at,omitempty"`
	GeofenceInfo         *GeofenceInfo   `json:"geofence_info,omitempty"`
}
