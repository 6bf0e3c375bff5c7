package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/blob"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/identity"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/messaging"
	"github.com/feral-file/launchpad/internal/metrics"
	"github.com/feral-file/launchpad/internal/store"
	"github.com/feral-file/launchpad/internal/store/schema"
)

// Caller identifies who invokes an operation.
// Subject is the identity-provider subject of a bearer token; Admin is set for API-key callers.
type Caller struct {
	Subject string
	Admin   bool
}

// Anonymous reports whether the caller presented no credentials
func (c Caller) Anonymous() bool {
	return c.Subject == "" && !c.Admin
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateStartup lists a new startup owned by the caller
	CreateStartup(ctx context.Context, caller Caller, req *dto.CreateStartupRequest) (*dto.StartupResponse, error)
	// GetStartup retrieves a startup by id. Unapproved or draft startups are only visible to their owner.
	GetStartup(ctx context.Context, caller Caller, id string) (*dto.StartupResponse, error)
	// GetStartupByRoutingName retrieves a startup by its slug with the same visibility as GetStartup
	GetStartupByRoutingName(ctx context.Context, caller Caller, routingName string) (*dto.StartupResponse, error)
	// ListStartups returns the approved and published directory with filters and search applied
	ListStartups(ctx context.Context, req dto.ListStartupsRequest) (*dto.StartupListResponse, error)
	// ListFeaturedStartups returns the approved, published and featured startups
	ListFeaturedStartups(ctx context.Context) (*dto.StartupListResponse, error)
	// ListUserStartups returns the startups of a user; other callers only see the public ones
	ListUserStartups(ctx context.Context, caller Caller, userID string) (*dto.StartupListResponse, error)
	// UpdateStartup applies an owner edit and releases replaced files
	UpdateStartup(ctx context.Context, caller Caller, id string, req *dto.UpdateStartupRequest) (*dto.StartupResponse, error)
	// DeleteStartup removes a startup and releases every file it holds
	DeleteStartup(ctx context.Context, caller Caller, id string) error
	// SetApproval sets the moderation flag of a startup
	SetApproval(ctx context.Context, id string, approved bool) (*dto.StartupResponse, error)
	// SetFeatured sets the featured flag of a startup
	SetFeatured(ctx context.Context, id string, featured bool) (*dto.StartupResponse, error)
	// ReconcileCounters resets the engagement counters to the length of their histories
	ReconcileCounters(ctx context.Context, id string) (*dto.ReconcileResponse, error)

	// RecordEngagement appends events to a views, upvotes or website-visits history
	RecordEngagement(ctx context.Context, id string, kind domain.EngagementKind, events []domain.Event) (*dto.EngagementResponse, error)

	// CaptureLeads merges viewer leads into the deck or demo history
	CaptureLeads(ctx context.Context, id string, asset domain.Asset, leads []domain.Lead) (*dto.LeadCaptureResponse, error)
	// AccessAsset opens a deck or demo for a viewer and records the lead they leave
	AccessAsset(ctx context.Context, id string, asset domain.Asset, req *dto.AccessAssetRequest, clientIP string) (*dto.AssetAccessResponse, error)
	// SetAssetPassword sets or clears the password of an asset
	SetAssetPassword(ctx context.Context, caller Caller, id string, asset domain.Asset, password string) (*dto.StartupResponse, error)
	// SetAssetLock locks or unlocks an asset
	SetAssetLock(ctx context.Context, caller Caller, id string, asset domain.Asset, locked bool) (*dto.StartupResponse, error)
	// SetAssetVisibility shows or hides an asset
	SetAssetVisibility(ctx context.Context, caller Caller, id string, asset domain.Asset, shown bool) (*dto.StartupResponse, error)
	// DeleteAsset removes the file of an asset and hides it
	DeleteAsset(ctx context.Context, caller Caller, id string, asset domain.Asset) (*dto.StartupResponse, error)

	// AddMetrics merges metric reports by period
	AddMetrics(ctx context.Context, caller Caller, id string, req *dto.AddMetricsRequest) (*dto.MetricsResponse, error)
	// UpdateMetric patches one metric report
	UpdateMetric(ctx context.Context, caller Caller, id string, metricID string, patch domain.MetricPatch) (*dto.MetricsResponse, error)
	// DeleteMetric removes one metric report
	DeleteMetric(ctx context.Context, caller Caller, id string, metricID string) (*dto.MetricsResponse, error)

	// Upload stores a file and returns its storage id and url
	Upload(ctx context.Context, filename string, data []byte) (*dto.UploadResponse, error)

	// CreateUser registers the caller; an existing registration is returned as is
	CreateUser(ctx context.Context, subject string, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	// GetUser retrieves the user registered for an identity subject
	GetUser(ctx context.Context, subject string) (*dto.UserResponse, error)
	// GetUserByID retrieves a user by id
	GetUserByID(ctx context.Context, id string) (*dto.UserResponse, error)
	// UpdateUser edits the user registered for an identity subject
	UpdateUser(ctx context.Context, subject string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	// DeleteUser revokes the sessions of a subject, then deletes the user and its startups
	DeleteUser(ctx context.Context, subject string) error

	// SaveTaxonomy creates an entry or updates the description of the entry with the same name
	SaveTaxonomy(ctx context.Context, kind domain.TaxonomyKind, req *dto.SaveTaxonomyRequest) (*dto.TaxonomyResponse, error)
	// UpdateTaxonomy edits an entry
	UpdateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, id string, req *dto.UpdateTaxonomyRequest) (*dto.TaxonomyResponse, error)
	// DeleteTaxonomy removes an entry
	DeleteTaxonomy(ctx context.Context, kind domain.TaxonomyKind, id string) error
	// GetTaxonomyByName retrieves an entry by name
	GetTaxonomyByName(ctx context.Context, kind domain.TaxonomyKind, name string) (*dto.TaxonomyResponse, error)
	// ListTaxonomy returns every entry of a kind
	ListTaxonomy(ctx context.Context, kind domain.TaxonomyKind) (*dto.TaxonomyListResponse, error)

	// CreateResource adds a resource link
	CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error)
	// ListResources returns every resource link
	ListResources(ctx context.Context) (*dto.ResourceListResponse, error)
	// DeleteResource removes a resource link
	DeleteResource(ctx context.Context, id string) error
}

// Deps holds the collaborators of the executor
type Deps struct {
	Store     store.Store
	Blobs     blob.Store
	Publisher messaging.Publisher
	Revoker   identity.SessionRevoker
	Clock     adapter.Clock
	// ReleaseConcurrency bounds the parallel blob releases of one operation
	ReleaseConcurrency int
}

type executor struct {
	store     store.Store
	blobs     blob.Store
	publisher messaging.Publisher
	revoker   identity.SessionRevoker
	clock     adapter.Clock
	pool      pond.Pool
}

func NewExecutor(deps Deps) Executor {
	concurrency := deps.ReleaseConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &executor{
		store:     deps.Store,
		blobs:     deps.Blobs,
		publisher: deps.Publisher,
		revoker:   deps.Revoker,
		clock:     deps.Clock,
		pool:      pond.NewPool(concurrency),
	}
}

// actor is a caller resolved against the users table
type actor struct {
	admin  bool
	userID string
}

// owns reports whether the actor may manage the startup
func (a actor) owns(s *schema.Startup) bool {
	return a.admin || (a.userID != "" && s.ListingOwner == a.userID)
}

// resolveActor looks up the user behind the caller. Anonymous callers and
// unregistered subjects resolve to an actor that owns nothing.
func (e *executor) resolveActor(ctx context.Context, caller Caller) (actor, error) {
	if caller.Admin {
		return actor{admin: true}, nil
	}
	if caller.Subject == "" {
		return actor{}, nil
	}

	user, err := e.store.GetUserByClerkID(ctx, caller.Subject)
	if err != nil {
		return actor{}, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return actor{}, nil
	}
	return actor{userID: user.ID}, nil
}

// mutateOwnedStartup runs mutate under the row lock after checking that the caller owns the startup
func (e *executor) mutateOwnedStartup(ctx context.Context, caller Caller, id string, mutate store.StartupMutator) (*schema.Startup, error) {
	a, err := e.resolveActor(ctx, caller)
	if err != nil {
		return nil, err
	}

	startup, err := e.store.UpdateStartup(ctx, id, func(s *schema.Startup) error {
		if !a.owns(s) {
			return domain.ErrForbidden
		}
		return mutate(s)
	})
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to update startup")
	}
	return startup, nil
}

// releaseBlobs releases every non-empty storage id concurrently. Each release
// is attempted; failures are logged and joined into the returned error.
func (e *executor) releaseBlobs(ctx context.Context, storageIDs ...string) error {
	// releases must finish even if the request is cancelled after commit
	ctx = context.WithoutCancel(ctx)

	var (
		mu   sync.Mutex
		errs []error
	)

	group := e.pool.NewGroup()
	for _, storageID := range storageIDs {
		if storageID == "" {
			continue
		}
		group.Submit(func() {
			if err := e.blobs.Release(ctx, storageID); err != nil {
				metrics.BlobReleaseFailures.Inc()
				logger.WarnCtx(ctx, "Failed to release blob",
					zap.String("storage_id", storageID),
					zap.Error(err),
				)
				mu.Lock()
				errs = append(errs, fmt.Errorf("failed to release %s: %w", storageID, err))
				mu.Unlock()
			}
		})
	}
	_ = group.Wait()

	return errors.Join(errs...)
}
