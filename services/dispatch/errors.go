package dispatch

import "errors"

var (
	// ErrValidation is returned for malformed ride requests
	ErrValidation = errors.New("invalid ride request")

	// ErrNoCommunityAssigned is returned when the passenger has no community
	ErrNoCommunityAssigned = errors.New("passenger has no community assigned")

	// ErrCommunityInactive is returned when the passenger's community is not active
	ErrCommunityInactive = errors.New("community is not active")

	// ErrNoDriversAvailable is returned when no drivers exist anywhere
	ErrNoDriversAvailable = errors.New("no drivers available anywhere")

	// ErrSensitiveFallbackUnavailable is returned when policy forbids the
	// fallback tier for a sensitive neighborhood.
	ErrSensitiveFallbackUnavailable = errors.New("fallback unavailable for sensitive neighborhood")

	// ErrTokenNotFound is returned when a confirmation token does not exist
	ErrTokenNotFound = errors.New("confirmation token not found")

	// ErrTokenExpired is returned when an unused token is redeemed past its deadline
	ErrTokenExpired = errors.New("confirmation token expired")

	// ErrTokenOwnership is returned when a token belongs to another passenger
	ErrTokenOwnership = errors.New("confirmation token belongs to another passenger")

	// ErrConcurrentModification is returned when the CAS layer reports a
	// conflict outside the designed already-used path.
	ErrConcurrentModification = errors.New("confirmation modified concurrently")

	// ErrRideNotFound is returned when no ride matches the lookup
	ErrRideNotFound = errors.New("ride not found")
)
