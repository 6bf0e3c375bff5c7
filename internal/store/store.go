package store

import (
	"context"
	"errors"

	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/store/schema"
)

// ErrNoop is returned by a mutator to abandon an update without writing.
// UpdateStartup treats it as success and returns the unchanged record.
var ErrNoop = errors.New("nothing to write")

// StartupMutator computes the new state of a locked startup in place
type StartupMutator func(startup *schema.Startup) error

// StartupFilter holds equality filters for listing startups; zero values are ignored
type StartupFilter struct {
	Approved     *bool
	Featured     *bool
	Status       *domain.StartupStatus
	ListingOwner string
	Sector       string
	Category     string
	Industry     string
}

// TaxonomyUpdate holds the editable taxonomy fields; nil leaves the field untouched
type TaxonomyUpdate struct {
	Name        *string
	Description *string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// CreateStartup inserts a new startup.
	// Returns domain.ErrStorageRefInUse when a storage id is held by another startup.
	CreateStartup(ctx context.Context, startup *schema.Startup) error
	// GetStartupByID retrieves a startup by id, nil if it does not exist
	GetStartupByID(ctx context.Context, id string) (*schema.Startup, error)
	// GetStartupByRoutingName retrieves the newest startup with the slug, nil if none
	GetStartupByRoutingName(ctx context.Context, routingName string) (*schema.Startup, error)
	// ListStartups returns startups matching the filter, newest first
	ListStartups(ctx context.Context, filter StartupFilter) ([]*schema.Startup, error)
	// UpdateStartup locks a startup, applies mutate and writes the full record back.
	// Returns domain.ErrStartupNotFound when the id does not exist and
	// domain.ErrStorageRefInUse when a storage id is held by another startup.
	UpdateStartup(ctx context.Context, id string, mutate StartupMutator) (*schema.Startup, error)
	// DeleteStartup removes a startup and returns the deleted row
	DeleteStartup(ctx context.Context, id string) (*schema.Startup, error)

	// CreateUser inserts a new user
	CreateUser(ctx context.Context, user *schema.User) error
	// GetUserByID retrieves a user by id, nil if it does not exist
	GetUserByID(ctx context.Context, id string) (*schema.User, error)
	// GetUserByClerkID retrieves a user by identity-provider subject, nil if it does not exist
	GetUserByClerkID(ctx context.Context, clerkID string) (*schema.User, error)
	// UpdateUser applies a patch to a user
	UpdateUser(ctx context.Context, id string, patch schema.UserPatch) (*schema.User, error)
	// DeleteUser removes a user and, through the foreign key, its startups
	DeleteUser(ctx context.Context, id string) error

	// CreateTaxonomy inserts an entry into the table of the given kind
	CreateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, entry *schema.Taxonomy) error
	// UpdateTaxonomy edits an entry of the given kind.
	// Returns domain.ErrTaxonomyNameTaken when the new name already exists.
	UpdateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, id string, update TaxonomyUpdate) (*schema.Taxonomy, error)
	// DeleteTaxonomy removes an entry of the given kind
	DeleteTaxonomy(ctx context.Context, kind domain.TaxonomyKind, id string) error
	// GetTaxonomyByName retrieves an entry by name, nil if it does not exist
	GetTaxonomyByName(ctx context.Context, kind domain.TaxonomyKind, name string) (*schema.Taxonomy, error)
	// ListTaxonomy returns every entry of the given kind ordered by name
	ListTaxonomy(ctx context.Context, kind domain.TaxonomyKind) ([]schema.Taxonomy, error)

	// CreateResource inserts a resource link
	CreateResource(ctx context.Context, resource *schema.Resource) error
	// ListResources returns resources, newest first
	ListResources(ctx context.Context) ([]schema.Resource, error)
	// DeleteResource removes a resource
	DeleteResource(ctx context.Context, id string) error
}
