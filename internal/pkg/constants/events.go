package constants

// Event types. NATS publishes them as subjects, NSQ as topics and Kafka in the event_type header.
const (
	// Catalog
	SubjectCategoryCreated = "catalog.category_created"

	// Helpers
	SubjectHelperAvailabilityChanged = "helper.availability_changed"
	SubjectHelperApproved            = "helper.approved"

	// Requests
	SubjectRequestCreated       = "request.created"
	SubjectRequestAssigned      = "request.assigned"
	SubjectRequestStatusChanged = "request.status_changed"
)
