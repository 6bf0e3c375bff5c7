package domain

import "time"

// Event is one engagement entry in a views, upvotes or website-visits history
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty"`
}

// AppendHistory concatenates incoming events onto an existing history.
// Order is preserved as given; no deduplication or sorting happens here.
// An empty batch returns existing as is, including a nil history.
func AppendHistory(existing, incoming []Event) []Event {
	if len(incoming) == 0 {
		return existing
	}

	merged := make([]Event, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)
	merged = append(merged, incoming...)
	return merged
}

// StampEvents fills missing timestamps with now
func StampEvents(events []Event, now time.Time) []Event {
	for i := range events {
		if events[i].Timestamp.IsZero() {
			events[i].Timestamp = now
		}
	}
	return events
}
