package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/launchpad/internal/domain"
)

// Startup represents the startups table - one listing with its engagement logs, gated assets and metrics
type Startup struct {
	// ID is an opaque UUID
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// RoutingName is the human-readable slug used in URLs (expected unique, not enforced)
	RoutingName string `gorm:"column:routing_name;not null;type:text;index"`
	// ListingOwner is the users.id of the owner
	ListingOwner string `gorm:"column:listing_owner;not null;type:varchar(36);index"`

	Name         string `gorm:"column:name;not null;type:text"`
	Tagline      string `gorm:"column:tagline;type:text"`
	Description  string `gorm:"column:description;type:text"`
	WebsiteURL   string `gorm:"column:website_url;type:text"`
	Location     string `gorm:"column:location;type:text"`
	TeamSize     int    `gorm:"column:team_size;not null;default:0"`
	FoundedYear  int    `gorm:"column:founded_year;not null;default:0"`
	FundingStage string `gorm:"column:funding_stage;type:text"`
	Sector       string `gorm:"column:sector;type:text;index"`
	Category     string `gorm:"column:category;type:text;index"`
	Industry     string `gorm:"column:industry;type:text;index"`

	LogoURL        string `gorm:"column:logo_url;type:text"`
	LogoStorageID  string `gorm:"column:logo_storage_id;type:text"`
	ImageURL       string `gorm:"column:image_url;type:text"`
	ImageStorageID string `gorm:"column:image_storage_id;type:text"`

	// Status is chosen by the owner; Approved is set by moderation
	Status   domain.StartupStatus `gorm:"column:status;not null;type:text;default:'draft'"`
	Approved bool                 `gorm:"column:approved;not null;default:false"`
	Featured bool                 `gorm:"column:featured;not null;default:false"`

	// Counters are denormalized; they are not recomputed from the histories
	Views         int64 `gorm:"column:views;not null;default:0"`
	Upvotes       int64 `gorm:"column:upvotes;not null;default:0"`
	WebsiteVisits int64 `gorm:"column:website_visits;not null;default:0"`

	ViewsHistory         datatypes.JSONSlice[domain.Event] `gorm:"column:views_history;type:jsonb"`
	UpvotesHistory       datatypes.JSONSlice[domain.Event] `gorm:"column:upvotes_history;type:jsonb"`
	WebsiteVisitsHistory datatypes.JSONSlice[domain.Event] `gorm:"column:website_visits_history;type:jsonb"`

	DeckURL          string `gorm:"column:deck_url;type:text"`
	DeckStorageID    string `gorm:"column:deck_storage_id;type:text"`
	ShowDeck         bool   `gorm:"column:show_deck;not null;default:false"`
	LockDeck         bool   `gorm:"column:lock_deck;not null;default:false"`
	DeckPasswordHash string `gorm:"column:deck_password_hash;type:text"`

	DemoURL          string `gorm:"column:demo_url;type:text"`
	DemoStorageID    string `gorm:"column:demo_storage_id;type:text"`
	ShowDemo         bool   `gorm:"column:show_demo;not null;default:false"`
	LockDemo         bool   `gorm:"column:lock_demo;not null;default:false"`
	DemoPasswordHash string `gorm:"column:demo_password_hash;type:text"`

	DeckHistory datatypes.JSONSlice[domain.Lead] `gorm:"column:deck_history;type:jsonb"`
	DemoHistory datatypes.JSONSlice[domain.Lead] `gorm:"column:demo_history;type:jsonb"`

	Metrics datatypes.JSONSlice[domain.Metric] `gorm:"column:metrics;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Startup model
func (Startup) TableName() string {
	return "startups"
}

// Gate returns the lock state of an asset slot
func (s *Startup) Gate(asset domain.Asset) domain.AssetGate {
	if asset == domain.AssetDemo {
		return domain.AssetGate{Shown: s.ShowDemo, Locked: s.LockDemo, PasswordHash: s.DemoPasswordHash}
	}
	return domain.AssetGate{Shown: s.ShowDeck, Locked: s.LockDeck, PasswordHash: s.DeckPasswordHash}
}

// SetGate writes a lock state back into an asset slot
func (s *Startup) SetGate(asset domain.Asset, gate domain.AssetGate) {
	if asset == domain.AssetDemo {
		s.ShowDemo, s.LockDemo, s.DemoPasswordHash = gate.Shown, gate.Locked, gate.PasswordHash
		return
	}
	s.ShowDeck, s.LockDeck, s.DeckPasswordHash = gate.Shown, gate.Locked, gate.PasswordHash
}

// AssetFile returns the url and storage id of an asset slot
func (s *Startup) AssetFile(asset domain.Asset) (url string, storageID string) {
	if asset == domain.AssetDemo {
		return s.DemoURL, s.DemoStorageID
	}
	return s.DeckURL, s.DeckStorageID
}

// SetAssetFile replaces the url and storage id of an asset slot
func (s *Startup) SetAssetFile(asset domain.Asset, url string, storageID string) {
	if asset == domain.AssetDemo {
		s.DemoURL, s.DemoStorageID = url, storageID
		return
	}
	s.DeckURL, s.DeckStorageID = url, storageID
}

// Leads returns the viewer history of an asset slot
func (s *Startup) Leads(asset domain.Asset) []domain.Lead {
	if asset == domain.AssetDemo {
		return s.DemoHistory
	}
	return s.DeckHistory
}

// SetLeads replaces the viewer history of an asset slot
func (s *Startup) SetLeads(asset domain.Asset, leads []domain.Lead) {
	if asset == domain.AssetDemo {
		s.DemoHistory = leads
		return
	}
	s.DeckHistory = leads
}

// AppendEngagement appends events to the matching history and bumps its counter
// by the number of events appended. It returns the new counter value.
func (s *Startup) AppendEngagement(kind domain.EngagementKind, events []domain.Event) int64 {
	switch kind {
	case domain.EngagementViews:
		s.ViewsHistory = domain.AppendHistory(s.ViewsHistory, events)
		s.Views += int64(len(events))
		return s.Views
	case domain.EngagementUpvotes:
		s.UpvotesHistory = domain.AppendHistory(s.UpvotesHistory, events)
		s.Upvotes += int64(len(events))
		return s.Upvotes
	case domain.EngagementWebsiteVisits:
		s.WebsiteVisitsHistory = domain.AppendHistory(s.WebsiteVisitsHistory, events)
		s.WebsiteVisits += int64(len(events))
		return s.WebsiteVisits
	}
	return 0
}

// ReconcileCounters sets every counter to the length of its history
// and reports whether any counter had drifted
func (s *Startup) ReconcileCounters() bool {
	views := int64(len(s.ViewsHistory))
	upvotes := int64(len(s.UpvotesHistory))
	visits := int64(len(s.WebsiteVisitsHistory))

	drifted := s.Views != views || s.Upvotes != upvotes || s.WebsiteVisits != visits
	s.Views, s.Upvotes, s.WebsiteVisits = views, upvotes, visits
	return drifted
}

// StorageIDs returns every storage id held by the record, empty ones included
func (s *Startup) StorageIDs() []string {
	return []string{s.LogoStorageID, s.ImageStorageID, s.DeckStorageID, s.DemoStorageID}
}

// ResolveFiles derives the url of every file slot that holds a storage id
func (s *Startup) ResolveFiles(resolve func(storageID string) (string, error)) error {
	slots := []struct {
		url       *string
		storageID string
	}{
		{&s.LogoURL, s.LogoStorageID},
		{&s.ImageURL, s.ImageStorageID},
		{&s.DeckURL, s.DeckStorageID},
		{&s.DemoURL, s.DemoStorageID},
	}

	for _, slot := range slots {
		if slot.storageID == "" {
			continue
		}
		url, err := resolve(slot.storageID)
		if err != nil {
			return err
		}
		*slot.url = url
	}
	return nil
}

// SearchFields returns the fields matched by free-text search
func (s *Startup) SearchFields() domain.SearchFields {
	return domain.SearchFields{
		Name:        s.Name,
		Tagline:     s.Tagline,
		Description: s.Description,
		Sector:      s.Sector,
		Category:    s.Category,
		Industry:    s.Industry,
	}
}
