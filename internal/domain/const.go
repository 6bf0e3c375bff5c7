package domain

const (
	// DUMMY_METRIC_ID marks the placeholder metric seeded on every new startup
	DUMMY_METRIC_ID = "dummy-data"

	// Subject prefix for messages published by the service
	EVENT_SUBJECT_PREFIX = "launchpad"

	// SESSION_REVOKE_ATTEMPTS is the number of immediate attempts made against the identity provider
	SESSION_REVOKE_ATTEMPTS = 3
)
