package constants

// NATS Subjects
const (
	// Dispatch events
	SubjectRideCreated        = "ride.created"
	SubjectRideFeeInit        = "ride.fee.init"
	SubjectConfirmationIssued = "dispatch.confirmation.issued"

	// Community events
	SubjectCommunityActivated   = "community.activated"
	SubjectCommunityDeactivated = "community.deactivated"
)
