package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/feral-file/launchpad/internal/api/shared/constants"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/store/schema"
)

// CreateStartupRequest represents the request body for listing a new startup
type CreateStartupRequest struct {
	RoutingName  string                `json:"routingName"`
	Name         string                `json:"name"`
	Tagline      string                `json:"tagline"`
	Description  string                `json:"description"`
	WebsiteURL   string                `json:"websiteUrl"`
	Location     string                `json:"location"`
	TeamSize     int                   `json:"teamSize"`
	FoundedYear  int                   `json:"foundedYear"`
	FundingStage string                `json:"fundingStage"`
	Sector       string                `json:"sector"`
	Category     string                `json:"category"`
	Industry     string                `json:"industry"`
	Status       *domain.StartupStatus `json:"status,omitempty"`

	LogoURL        string `json:"logoUrl"`
	LogoStorageID  string `json:"logoStorageId"`
	ImageURL       string `json:"imageUrl"`
	ImageStorageID string `json:"imageStorageId"`

	DeckURL       string `json:"deckUrl"`
	DeckStorageID string `json:"deckStorageId"`
	ShowDeck      bool   `json:"showDeck"`

	DemoURL       string `json:"demoUrl"`
	DemoStorageID string `json:"demoStorageId"`
	ShowDemo      bool   `json:"showDemo"`
}

// Validate validates the request body
func (r *CreateStartupRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apierrors.NewValidationError("name is required")
	}

	if strings.TrimSpace(r.RoutingName) == "" {
		return apierrors.NewValidationError("routingName is required")
	}

	if r.Status != nil && !r.Status.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid status: %s", *r.Status))
	}

	if r.TeamSize < 0 || r.FoundedYear < 0 {
		return apierrors.NewValidationError("teamSize and foundedYear must not be negative")
	}

	if err := domain.EnsureDistinctStorageRefs(r.LogoStorageID, r.ImageStorageID, r.DeckStorageID, r.DemoStorageID); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	return nil
}

// ToSchema builds the record for a new listing owned by ownerID
func (r *CreateStartupRequest) ToSchema(id, ownerID string) *schema.Startup {
	status := domain.StartupStatusDraft
	if r.Status != nil {
		status = *r.Status
	}

	return &schema.Startup{
		ID:             id,
		RoutingName:    r.RoutingName,
		ListingOwner:   ownerID,
		Name:           r.Name,
		Tagline:        r.Tagline,
		Description:    r.Description,
		WebsiteURL:     r.WebsiteURL,
		Location:       r.Location,
		TeamSize:       r.TeamSize,
		FoundedYear:    r.FoundedYear,
		FundingStage:   r.FundingStage,
		Sector:         r.Sector,
		Category:       r.Category,
		Industry:       r.Industry,
		Status:         status,
		LogoURL:        r.LogoURL,
		LogoStorageID:  r.LogoStorageID,
		ImageURL:       r.ImageURL,
		ImageStorageID: r.ImageStorageID,
		DeckURL:        r.DeckURL,
		DeckStorageID:  r.DeckStorageID,
		ShowDeck:       r.ShowDeck,
		DemoURL:        r.DemoURL,
		DemoStorageID:  r.DemoStorageID,
		ShowDemo:       r.ShowDemo,
	}
}

// UpdateStartupRequest represents the request body for editing a startup; omitted fields are untouched
type UpdateStartupRequest struct {
	RoutingName  *string               `json:"routingName,omitempty"`
	Name         *string               `json:"name,omitempty"`
	Tagline      *string               `json:"tagline,omitempty"`
	Description  *string               `json:"description,omitempty"`
	WebsiteURL   *string               `json:"websiteUrl,omitempty"`
	Location     *string               `json:"location,omitempty"`
	TeamSize     *int                  `json:"teamSize,omitempty"`
	FoundedYear  *int                  `json:"foundedYear,omitempty"`
	FundingStage *string               `json:"fundingStage,omitempty"`
	Sector       *string               `json:"sector,omitempty"`
	Category     *string               `json:"category,omitempty"`
	Industry     *string               `json:"industry,omitempty"`
	Status       *domain.StartupStatus `json:"status,omitempty"`

	LogoURL        *string `json:"logoUrl,omitempty"`
	LogoStorageID  *string `json:"logoStorageId,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	ImageStorageID *string `json:"imageStorageId,omitempty"`

	DeckURL       *string `json:"deckUrl,omitempty"`
	DeckStorageID *string `json:"deckStorageId,omitempty"`
	ShowDeck      *bool   `json:"showDeck,omitempty"`

	DemoURL       *string `json:"demoUrl,omitempty"`
	DemoStorageID *string `json:"demoStorageId,omitempty"`
	ShowDemo      *bool   `json:"showDemo,omitempty"`
}

// Validate validates the request body
func (r *UpdateStartupRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apierrors.NewValidationError("name must not be empty")
	}

	if r.RoutingName != nil && strings.TrimSpace(*r.RoutingName) == "" {
		return apierrors.NewValidationError("routingName must not be empty")
	}

	if r.Status != nil && !r.Status.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid status: %s", *r.Status))
	}

	if (r.TeamSize != nil && *r.TeamSize < 0) || (r.FoundedYear != nil && *r.FoundedYear < 0) {
		return apierrors.NewValidationError("teamSize and foundedYear must not be negative")
	}

	return nil
}

// ToPatch converts the request into a store patch
func (r *UpdateStartupRequest) ToPatch() schema.StartupPatch {
	return schema.StartupPatch{
		RoutingName:    r.RoutingName,
		Name:           r.Name,
		Tagline:        r.Tagline,
		Description:    r.Description,
		WebsiteURL:     r.WebsiteURL,
		Location:       r.Location,
		TeamSize:       r.TeamSize,
		FoundedYear:    r.FoundedYear,
		FundingStage:   r.FundingStage,
		Sector:         r.Sector,
		Category:       r.Category,
		Industry:       r.Industry,
		Status:         r.Status,
		LogoURL:        r.LogoURL,
		LogoStorageID:  r.LogoStorageID,
		ImageURL:       r.ImageURL,
		ImageStorageID: r.ImageStorageID,
		DeckURL:        r.DeckURL,
		DeckStorageID:  r.DeckStorageID,
		ShowDeck:       r.ShowDeck,
		DemoURL:        r.DemoURL,
		DemoStorageID:  r.DemoStorageID,
		ShowDemo:       r.ShowDemo,
	}
}

// EngagementRequest represents the request body for recording views, upvotes or website visits
type EngagementRequest struct {
	Events []domain.Event `json:"events"`
}

// Validate validates the request body
func (r *EngagementRequest) Validate() error {
	if len(r.Events) > constants.MAX_ENGAGEMENT_EVENTS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d events allowed", constants.MAX_ENGAGEMENT_EVENTS_PER_REQUEST))
	}
	return nil
}

// CaptureLeadsRequest represents the request body for appending viewer leads to a deck or demo
type CaptureLeadsRequest struct {
	Leads []domain.Lead `json:"leads"`
}

// Validate validates the request body
func (r *CaptureLeadsRequest) Validate() error {
	if len(r.Leads) == 0 {
		return apierrors.NewValidationError("leads is required")
	}

	if len(r.Leads) > constants.MAX_LEADS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d leads allowed", constants.MAX_LEADS_PER_REQUEST))
	}

	return nil
}

// AccessAssetRequest represents the request body a viewer sends to open a deck or demo
type AccessAssetRequest struct {
	Password string       `json:"password"`
	Lead     *domain.Lead `json:"lead,omitempty"`
}

// SetPasswordRequest represents the request body for setting an asset password
type SetPasswordRequest struct {
	Password string `json:"password"`
}

// SetLockRequest represents the request body for locking or unlocking an asset
type SetLockRequest struct {
	Locked bool `json:"locked"`
}

// SetVisibilityRequest represents the request body for showing or hiding an asset
type SetVisibilityRequest struct {
	Shown bool `json:"shown"`
}

// SetFlagRequest represents the request body for the moderation flags (approved, featured)
type SetFlagRequest struct {
	Value bool `json:"value"`
}

// MetricInput is one metric report submitted by a founder
type MetricInput struct {
	ID                string     `json:"id,omitempty"`
	Period            string     `json:"period"`
	RevenueGrowthRate string     `json:"revenueGrowthRate"`
	RetentionRate     string     `json:"retentionRate"`
	CustomersAcquired string     `json:"customersAcquired"`
	ActiveUsers       string     `json:"activeUsers"`
	Report            string     `json:"report"`
	Timestamp         *time.Time `json:"timestamp,omitempty"`
}

// AddMetricsRequest represents the request body for merging metric reports
type AddMetricsRequest struct {
	Metrics []MetricInput `json:"metrics"`
}

// Validate validates the request body
func (r *AddMetricsRequest) Validate() error {
	if len(r.Metrics) == 0 {
		return apierrors.NewValidationError("metrics is required")
	}

	if len(r.Metrics) > constants.MAX_METRICS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d metrics allowed", constants.MAX_METRICS_PER_REQUEST))
	}

	ids := make(map[string]struct{}, len(r.Metrics))
	for _, m := range r.Metrics {
		if m.ID == domain.DUMMY_METRIC_ID {
			return apierrors.NewValidationError(fmt.Sprintf("metric id %s is reserved", domain.DUMMY_METRIC_ID))
		}
		if m.ID == "" {
			continue
		}
		if _, dup := ids[m.ID]; dup {
			return apierrors.NewValidationError(fmt.Sprintf("metric id %s appears more than once", m.ID))
		}
		ids[m.ID] = struct{}{}
	}

	return nil
}

// CreateUserRequest represents the request body for registering the authenticated user
type CreateUserRequest struct {
	Email      string            `json:"email"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	ImageURL   string            `json:"imageUrl"`
	Occupation domain.Occupation `json:"occupation"`
}

// Validate validates the request body
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return apierrors.NewValidationError("email is required")
	}

	if r.Occupation != "" && !r.Occupation.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid occupation: %s", r.Occupation))
	}

	return nil
}

// UpdateUserRequest represents the request body for editing the authenticated user
type UpdateUserRequest struct {
	Email              *string            `json:"email,omitempty"`
	FirstName          *string            `json:"firstName,omitempty"`
	LastName           *string            `json:"lastName,omitempty"`
	ImageURL           *string            `json:"imageUrl,omitempty"`
	Occupation         *domain.Occupation `json:"occupation,omitempty"`
	EmailNotifications *bool              `json:"emailNotifications,omitempty"`
	WeeklyDigest       *bool              `json:"weeklyDigest,omitempty"`
	Onboarded          *bool              `json:"onboarded,omitempty"`
	ProfileCompleted   *bool              `json:"profileCompleted,omitempty"`
	CompanyName        *string            `json:"companyName,omitempty"`
	JobTitle           *string            `json:"jobTitle,omitempty"`
	LinkedinURL        *string            `json:"linkedinUrl,omitempty"`
	Bio                *string            `json:"bio,omitempty"`
	InvestmentFocus    *string            `json:"investmentFocus,omitempty"`
	CheckSize          *string            `json:"checkSize,omitempty"`
	PortfolioURL       *string            `json:"portfolioUrl,omitempty"`
	Expertise          *string            `json:"expertise,omitempty"`
}

// Validate validates the request body
func (r *UpdateUserRequest) Validate() error {
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		return apierrors.NewValidationError("email must not be empty")
	}

	if r.Occupation != nil && !r.Occupation.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid occupation: %s", *r.Occupation))
	}

	return nil
}

// ToPatch converts the request into a store patch
func (r *UpdateUserRequest) ToPatch() schema.UserPatch {
	return schema.UserPatch{
		Email:              r.Email,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		ImageURL:           r.ImageURL,
		Occupation:         r.Occupation,
		EmailNotifications: r.EmailNotifications,
		WeeklyDigest:       r.WeeklyDigest,
		Onboarded:          r.Onboarded,
		ProfileCompleted:   r.ProfileCompleted,
		CompanyName:        r.CompanyName,
		JobTitle:           r.JobTitle,
		LinkedinURL:        r.LinkedinURL,
		Bio:                r.Bio,
		InvestmentFocus:    r.InvestmentFocus,
		CheckSize:          r.CheckSize,
		PortfolioURL:       r.PortfolioURL,
		Expertise:          r.Expertise,
	}
}

// SaveTaxonomyRequest represents the request body for creating a taxonomy entry
type SaveTaxonomyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate validates the request body
func (r *SaveTaxonomyRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apierrors.NewValidationError("name is required")
	}
	return nil
}

// UpdateTaxonomyRequest represents the request body for editing a taxonomy entry
type UpdateTaxonomyRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate validates the request body
func (r *UpdateTaxonomyRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apierrors.NewValidationError("name must not be empty")
	}
	return nil
}

// CreateResourceRequest represents the request body for adding a resource link
type CreateResourceRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// Validate validates the request body
func (r *CreateResourceRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apierrors.NewValidationError("title is required")
	}

	if strings.TrimSpace(r.URL) == "" {
		return apierrors.NewValidationError("url is required")
	}

	return nil
}

// ListStartupsRequest holds the query parameters of the public directory
type ListStartupsRequest struct {
	SearchTerm string
	Sector     string
	Category   string
	Industry   string
	Sort       string
}

// Validate validates the query parameters
func (r *ListStartupsRequest) Validate() error {
	switch r.Sort {
	case "", constants.SORT_NEWEST, constants.SORT_UPVOTES:
		return nil
	}
	return apierrors.NewValidationError(fmt.Sprintf("invalid sort: %s. Must be one of %s, %s", r.Sort, constants.SORT_NEWEST, constants.SORT_UPVOTES))
}
