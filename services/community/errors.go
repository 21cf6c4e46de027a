package community

import "errors"

var (
	// ErrCommunityNotFound is returned when no community matches the lookup
	ErrCommunityNotFound = errors.New("community not found")

	// ErrCommunityArchived is returned when a write targets an archived community
	ErrCommunityArchived = errors.New("community is archived")

	// ErrStatusConflict is returned when a status flip lost a concurrent race
	ErrStatusConflict = errors.New("community status changed concurrently")
)
