package location

import "errors"

var (
	// ErrDriverNotFound is returned when no driver status row exists
	ErrDriverNotFound = errors.New("driver not found")

	// ErrInvalidLocation is returned for coordinates outside WGS84 range
	ErrInvalidLocation = errors.New("invalid location coordinates")
)
