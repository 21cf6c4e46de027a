package constants

// Redis key formats
const (
	// Driver availability
	KeyDriverGeo        = "driver:geo"         // Geo set of all online driver locations
	KeyAvailableDrivers = "drivers:available"  // Set of available driver IDs
	KeyDriverLocation   = "driver:location:%s" // Format: driver:location:{driver_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
)
