package constants

const (
	MAX_UPLOAD_SIZE                   = int64(50 << 20)
	MAX_ENGAGEMENT_EVENTS_PER_REQUEST = 100
	MAX_LEADS_PER_REQUEST             = 50
	MAX_METRICS_PER_REQUEST           = 24
	DEFAULT_RELEASE_CONCURRENCY       = 4

	SORT_NEWEST  = "newest"
	SORT_UPVOTES = "upvotes"
)
