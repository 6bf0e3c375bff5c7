package domain

import "time"

// Lead is the contact record a viewer leaves when opening a deck or demo
type Lead struct {
	EmailAddress *string    `json:"emailAddress,omitempty"`
	PhoneNumber  *string    `json:"phoneNumber,omitempty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
	ViewerTitle  string     `json:"viewerTitle,omitempty"`
	IPAddress    string     `json:"ipAddress,omitempty"`
	FeedBack     string     `json:"feedBack,omitempty"`
}

// SameContact reports whether both the email and the phone number match.
// An absent field only matches another absent field.
func (l Lead) SameContact(other Lead) bool {
	return optionalEqual(l.EmailAddress, other.EmailAddress) &&
		optionalEqual(l.PhoneNumber, other.PhoneNumber)
}

// MergeLeads appends every incoming lead whose (email, phone) pair is not
// already present in existing. Incoming leads are only checked against
// existing, not against each other, so one batch may add the same contact twice.
// added is the number of appended leads; zero means the caller should skip the write.
func MergeLeads(existing, incoming []Lead) (merged []Lead, added int) {
	kept := make([]Lead, 0, len(incoming))
	for _, candidate := range incoming {
		if !containsContact(existing, candidate) {
			kept = append(kept, candidate)
		}
	}

	if len(kept) == 0 {
		return existing, 0
	}

	merged = make([]Lead, 0, len(existing)+len(kept))
	merged = append(merged, existing...)
	merged = append(merged, kept...)
	return merged, len(kept)
}

func containsContact(leads []Lead, candidate Lead) bool {
	for _, l := range leads {
		if l.SameContact(candidate) {
			return true
		}
	}
	return false
}

func optionalEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
