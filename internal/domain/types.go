package domain

import (
	"strings"
	"time"
)

// StartupStatus represents the publication state chosen by the listing owner
type StartupStatus string

const (
	StartupStatusDraft     StartupStatus = "draft"
	StartupStatusPublished StartupStatus = "published"
)

// Valid reports whether the status is one of the known publication states
func (s StartupStatus) Valid() bool {
	return s == StartupStatusDraft || s == StartupStatusPublished
}

// Occupation represents the role a user signed up with
type Occupation string

const (
	OccupationFounder  Occupation = "founder"
	OccupationOperator Occupation = "operator"
	OccupationInvestor Occupation = "investor"
	OccupationAdvisor  Occupation = "advisor"
)

// Valid reports whether the occupation is supported
func (o Occupation) Valid() bool {
	switch o {
	case OccupationFounder, OccupationOperator, OccupationInvestor, OccupationAdvisor:
		return true
	}
	return false
}

// ListsStartups reports whether the occupation owns listings (founders and operators)
func (o Occupation) ListsStartups() bool {
	return o == OccupationFounder || o == OccupationOperator
}

// Asset identifies one of the two protected asset slots of a startup
type Asset string

const (
	AssetDeck Asset = "deck"
	AssetDemo Asset = "demo"
)

// ParseAsset parses an asset name as it appears in routes
func ParseAsset(s string) (Asset, error) {
	switch Asset(strings.ToLower(s)) {
	case AssetDeck:
		return AssetDeck, nil
	case AssetDemo:
		return AssetDemo, nil
	}
	return "", ErrInvalidAsset
}

// EngagementKind identifies one of the three engagement histories
type EngagementKind string

const (
	EngagementViews         EngagementKind = "views"
	EngagementUpvotes       EngagementKind = "upvotes"
	EngagementWebsiteVisits EngagementKind = "website_visits"
)

// Valid reports whether the kind is a known engagement history
func (k EngagementKind) Valid() bool {
	return k == EngagementViews || k == EngagementUpvotes || k == EngagementWebsiteVisits
}

// Subject returns the message subject suffix used when the engagement is published
func (k EngagementKind) Subject() string {
	switch k {
	case EngagementViews:
		return "viewed"
	case EngagementUpvotes:
		return "upvoted"
	case EngagementWebsiteVisits:
		return "visited"
	}
	return string(k)
}

// TaxonomyKind identifies one of the static lookup tables
type TaxonomyKind string

const (
	TaxonomySector   TaxonomyKind = "sector"
	TaxonomyCategory TaxonomyKind = "category"
	TaxonomyIndustry TaxonomyKind = "industry"
)

// ParseTaxonomyKind accepts both singular and plural route names
func ParseTaxonomyKind(s string) (TaxonomyKind, error) {
	switch strings.ToLower(s) {
	case "sector", "sectors":
		return TaxonomySector, nil
	case "category", "categories":
		return TaxonomyCategory, nil
	case "industry", "industries":
		return TaxonomyIndustry, nil
	}
	return "", ErrInvalidTaxonomyKind
}

// Table returns the table backing the taxonomy kind
func (k TaxonomyKind) Table() string {
	switch k {
	case TaxonomySector:
		return "sectors"
	case TaxonomyCategory:
		return "categories"
	case TaxonomyIndustry:
		return "industries"
	}
	return ""
}

// EngagementEvent is the message published after engagement is recorded
type EngagementEvent struct {
	EventID    string         `json:"event_id"`
	Kind       EngagementKind `json:"kind"`
	StartupID  string         `json:"startup_id"`
	Count      int            `json:"count"`
	Total      int64          `json:"total"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// LeadCapturedEvent is the message published after a viewer lead is stored
type LeadCapturedEvent struct {
	EventID    string    `json:"event_id"`
	Asset      Asset     `json:"asset"`
	StartupID  string    `json:"startup_id"`
	Added      int       `json:"added"`
	OccurredAt time.Time `json:"occurred_at"`
}
