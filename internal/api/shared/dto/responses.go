package dto

import (
	"time"

	"github.com/feral-file/launchpad/internal/blob"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/store/schema"
)

// AssetResponse represents the public state of a deck or demo slot
type AssetResponse struct {
	URL         string `json:"url,omitempty"`
	Shown       bool   `json:"shown"`
	Locked      bool   `json:"locked"`
	HasPassword bool   `json:"hasPassword"`
	StorageID   string `json:"storageId,omitempty"`
}

// StartupResponse represents a startup listing.
// Histories, leads and metrics are only filled for the listing owner.
type StartupResponse struct {
	ID           string               `json:"id"`
	RoutingName  string               `json:"routingName"`
	ListingOwner string               `json:"listingOwner"`
	Name         string               `json:"name"`
	Tagline      string               `json:"tagline"`
	Description  string               `json:"description"`
	WebsiteURL   string               `json:"websiteUrl"`
	Location     string               `json:"location"`
	TeamSize     int                  `json:"teamSize"`
	FoundedYear  int                  `json:"foundedYear"`
	FundingStage string               `json:"fundingStage"`
	Sector       string               `json:"sector"`
	Category     string               `json:"category"`
	Industry     string               `json:"industry"`
	LogoURL      string               `json:"logoUrl"`
	ImageURL     string               `json:"imageUrl"`
	Status       domain.StartupStatus `json:"status"`
	Approved     bool                 `json:"approved"`
	Featured     bool                 `json:"featured"`

	Views         int64 `json:"views"`
	Upvotes       int64 `json:"upvotes"`
	WebsiteVisits int64 `json:"websiteVisits"`

	Deck AssetResponse `json:"deck"`
	Demo AssetResponse `json:"demo"`

	ViewsHistory         []domain.Event  `json:"viewsHistory,omitempty"`
	UpvotesHistory       []domain.Event  `json:"upvotesHistory,omitempty"`
	WebsiteVisitsHistory []domain.Event  `json:"websiteVisitsHistory,omitempty"`
	DeckHistory          []domain.Lead   `json:"deckHistory,omitempty"`
	DemoHistory          []domain.Lead   `json:"demoHistory,omitempty"`
	Metrics              []domain.Metric `json:"metrics,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewStartupResponse maps a startup record to its response.
// When owner is false the asset urls are withheld for hidden or locked slots
// and the dashboard data is left out. Password hashes are never exposed.
func NewStartupResponse(s *schema.Startup, owner bool) *StartupResponse {
	resp := &StartupResponse{
		ID:            s.ID,
		RoutingName:   s.RoutingName,
		ListingOwner:  s.ListingOwner,
		Name:          s.Name,
		Tagline:       s.Tagline,
		Description:   s.Description,
		WebsiteURL:    s.WebsiteURL,
		Location:      s.Location,
		TeamSize:      s.TeamSize,
		FoundedYear:   s.FoundedYear,
		FundingStage:  s.FundingStage,
		Sector:        s.Sector,
		Category:      s.Category,
		Industry:      s.Industry,
		LogoURL:       s.LogoURL,
		ImageURL:      s.ImageURL,
		Status:        s.Status,
		Approved:      s.Approved,
		Featured:      s.Featured,
		Views:         s.Views,
		Upvotes:       s.Upvotes,
		WebsiteVisits: s.WebsiteVisits,
		Deck:          newAssetResponse(s, domain.AssetDeck, owner),
		Demo:          newAssetResponse(s, domain.AssetDemo, owner),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	if owner {
		resp.ViewsHistory = s.ViewsHistory
		resp.UpvotesHistory = s.UpvotesHistory
		resp.WebsiteVisitsHistory = s.WebsiteVisitsHistory
		resp.DeckHistory = s.DeckHistory
		resp.DemoHistory = s.DemoHistory
		resp.Metrics = s.Metrics
	}

	return resp
}

func newAssetResponse(s *schema.Startup, asset domain.Asset, owner bool) AssetResponse {
	gate := s.Gate(asset)
	url, storageID := s.AssetFile(asset)

	resp := AssetResponse{
		Shown:       gate.Shown,
		Locked:      gate.Locked,
		HasPassword: gate.HasPassword(),
	}
	if owner {
		resp.URL = url
		resp.StorageID = storageID
	} else if gate.Shown && !gate.Locked {
		resp.URL = url
	}
	return resp
}

// StartupListResponse represents a list of startups
type StartupListResponse struct {
	Startups []*StartupResponse `json:"startups"`
	Total    int                `json:"total"`
}

// NewStartupListResponse maps startup records to their public responses
func NewStartupListResponse(startups []*schema.Startup, owner bool) *StartupListResponse {
	items := make([]*StartupResponse, len(startups))
	for i, s := range startups {
		items[i] = NewStartupResponse(s, owner)
	}
	return &StartupListResponse{Startups: items, Total: len(items)}
}

// EngagementResponse represents the result of recording engagement events
type EngagementResponse struct {
	Kind     domain.EngagementKind `json:"kind"`
	Recorded int                   `json:"recorded"`
	Total    int64                 `json:"total"`
}

// LeadCaptureResponse represents the result of merging viewer leads
type LeadCaptureResponse struct {
	Asset domain.Asset `json:"asset"`
	Added int          `json:"added"`
	Total int          `json:"total"`
}

// AssetAccessResponse is returned to a viewer that passed the asset gate
type AssetAccessResponse struct {
	Asset domain.Asset `json:"asset"`
	URL   string       `json:"url"`
}

// MetricsResponse represents the metric list of a startup
type MetricsResponse struct {
	Metrics []domain.Metric `json:"metrics"`
}

// ReconcileResponse reports whether the engagement counters had drifted from their histories
type ReconcileResponse struct {
	Drifted       bool  `json:"drifted"`
	Views         int64 `json:"views"`
	Upvotes       int64 `json:"upvotes"`
	WebsiteVisits int64 `json:"websiteVisits"`
}

// UploadResponse represents a stored blob
type UploadResponse struct {
	StorageID   string `json:"storageId"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// NewUploadResponse maps a stored blob to its response
func NewUploadResponse(obj *blob.Object) *UploadResponse {
	return &UploadResponse{
		StorageID:   obj.StorageID,
		URL:         obj.URL,
		ContentType: obj.ContentType,
		Size:        obj.Size,
	}
}

// UserResponse represents a user profile
type UserResponse struct {
	ID                 string            `json:"id"`
	ClerkID            string            `json:"clerkId"`
	Email              string            `json:"email"`
	FirstName          string            `json:"firstName"`
	LastName           string            `json:"lastName"`
	ImageURL           string            `json:"imageUrl"`
	Occupation         domain.Occupation `json:"occupation"`
	EmailNotifications bool              `json:"emailNotifications"`
	WeeklyDigest       bool              `json:"weeklyDigest"`
	Onboarded          bool              `json:"onboarded"`
	ProfileCompleted   bool              `json:"profileCompleted"`
	CompanyName        string            `json:"companyName,omitempty"`
	JobTitle           string            `json:"jobTitle,omitempty"`
	LinkedinURL        string            `json:"linkedinUrl,omitempty"`
	Bio                string            `json:"bio,omitempty"`
	InvestmentFocus    string            `json:"investmentFocus,omitempty"`
	CheckSize          string            `json:"checkSize,omitempty"`
	PortfolioURL       string            `json:"portfolioUrl,omitempty"`
	Expertise          string            `json:"expertise,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// NewUserResponse maps a user record to its response
func NewUserResponse(u *schema.User) *UserResponse {
	return &UserResponse{
		ID:                 u.ID,
		ClerkID:            u.ClerkID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		ImageURL:           u.ImageURL,
		Occupation:         u.Occupation,
		EmailNotifications: u.EmailNotifications,
		WeeklyDigest:       u.WeeklyDigest,
		Onboarded:          u.Onboarded,
		ProfileCompleted:   u.ProfileCompleted,
		CompanyName:        u.CompanyName,
		JobTitle:           u.JobTitle,
		LinkedinURL:        u.LinkedinURL,
		Bio:                u.Bio,
		InvestmentFocus:    u.InvestmentFocus,
		CheckSize:          u.CheckSize,
		PortfolioURL:       u.PortfolioURL,
		Expertise:          u.Expertise,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// TaxonomyResponse represents a sector, category or industry entry
type TaxonomyResponse struct {
	ID          string              `json:"id"`
	Kind        domain.TaxonomyKind `json:"kind"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// NewTaxonomyResponse maps a taxonomy row to its response
func NewTaxonomyResponse(kind domain.TaxonomyKind, t *schema.Taxonomy) *TaxonomyResponse {
	return &TaxonomyResponse{
		ID:          t.ID,
		Kind:        kind,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// TaxonomyListResponse represents every entry of one taxonomy kind
type TaxonomyListResponse struct {
	Kind    domain.TaxonomyKind `json:"kind"`
	Entries []TaxonomyResponse  `json:"entries"`
}

// ResourceResponse represents a resource link
type ResourceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewResourceResponse maps a resource row to its response
func NewResourceResponse(r *schema.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		Kind:        r.Kind,
		CreatedAt:   r.CreatedAt,
	}
}

// ResourceListResponse represents the resource links
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}
