package executor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/api/shared/constants"
	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/store"
	"github.com/feral-file/launchpad/internal/store/schema"
)

func (e *executor) CreateStartup(ctx context.Context, caller Caller, req *dto.CreateStartupRequest) (*dto.StartupResponse, error) {
	if caller.Subject == "" {
		return nil, apierrors.NewUnauthorizedError("A user token is required to list a startup")
	}

	owner, err := e.store.GetUserByClerkID(ctx, caller.Subject)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if owner == nil {
		return nil, apierrors.NewForbiddenError("User is not registered")
	}
	if owner.Occupation != "" && !owner.Occupation.ListsStartups() {
		return nil, apierrors.NewForbiddenError(fmt.Sprintf("Users with occupation %s cannot list startups", owner.Occupation))
	}

	now := e.clock.Now()
	startup := req.ToSchema(uuid.NewString(), owner.ID)
	if err := startup.ResolveFiles(e.resolveURL(ctx)); err != nil {
		return nil, apierrors.FromDomain(err, "Failed to resolve storage id")
	}
	startup.ViewsHistory = []domain.Event{}
	startup.UpvotesHistory = []domain.Event{}
	startup.WebsiteVisitsHistory = []domain.Event{}
	startup.DeckHistory = []domain.Lead{}
	startup.DemoHistory = []domain.Lead{}
	startup.Metrics = []domain.Metric{domain.NewDummyMetric(now)}
	startup.CreatedAt = now
	startup.UpdatedAt = now

	if err := e.store.CreateStartup(ctx, startup); err != nil {
		return nil, apierrors.FromDomain(err, "Failed to create startup")
	}

	logger.InfoCtx(ctx, "Startup created",
		zap.String("startup_id", startup.ID),
		zap.String("listing_owner", owner.ID),
	)

	return dto.NewStartupResponse(startup, true), nil
}

func (e *executor) GetStartup(ctx context.Context, caller Caller, id string) (*dto.StartupResponse, error) {
	startup, err := e.store.GetStartupByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get startup: %v", err))
	}

	return e.visibleStartup(ctx, caller, startup)
}

func (e *executor) GetStartupByRoutingName(ctx context.Context, caller Caller, routingName string) (*dto.StartupResponse, error) {
	startup, err := e.store.GetStartupByRoutingName(ctx, routingName)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get startup: %v", err))
	}

	return e.visibleStartup(ctx, caller, startup)
}

// visibleStartup maps a startup for the caller, returning nil when the caller may not see it
func (e *executor) visibleStartup(ctx context.Context, caller Caller, startup *schema.Startup) (*dto.StartupResponse, error) {
	if startup == nil {
		return nil, nil
	}

	a, err := e.resolveActor(ctx, caller)
	if err != nil {
		return nil, err
	}

	if a.owns(startup) {
		return dto.NewStartupResponse(startup, true), nil
	}
	if !isPublic(startup) {
		return nil, nil
	}
	return dto.NewStartupResponse(startup, false), nil
}

func isPublic(s *schema.Startup) bool {
	return s.Approved && s.Status == domain.StartupStatusPublished
}

func (e *executor) ListStartups(ctx context.Context, req dto.ListStartupsRequest) (*dto.StartupListResponse, error) {
	approved := true
	published := domain.StartupStatusPublished
	startups, err := e.store.ListStartups(ctx, store.StartupFilter{
		Approved: &approved,
		Status:   &published,
		Sector:   req.Sector,
		Category: req.Category,
		Industry: req.Industry,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list startups: %v", err))
	}

	matched := make([]*schema.Startup, 0, len(startups))
	for _, s := range startups {
		if domain.MatchesSearch(req.SearchTerm, s.SearchFields()) {
			matched = append(matched, s)
		}
	}

	if req.Sort == constants.SORT_UPVOTES {
		domain.SortByUpvotes(matched, func(s *schema.Startup) int64 { return s.Upvotes })
	}

	return dto.NewStartupListResponse(matched, false), nil
}

func (e *executor) ListFeaturedStartups(ctx context.Context) (*dto.StartupListResponse, error) {
	approved := true
	featured := true
	published := domain.StartupStatusPublished
	startups, err := e.store.ListStartups(ctx, store.StartupFilter{
		Approved: &approved,
		Featured: &featured,
		Status:   &published,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list featured startups: %v", err))
	}

	return dto.NewStartupListResponse(startups, false), nil
}

func (e *executor) ListUserStartups(ctx context.Context, caller Caller, userID string) (*dto.StartupListResponse, error) {
	a, err := e.resolveActor(ctx, caller)
	if err != nil {
		return nil, err
	}

	filter := store.StartupFilter{ListingOwner: userID}
	owner := a.admin || a.userID == userID
	if !owner {
		approved := true
		published := domain.StartupStatusPublished
		filter.Approved = &approved
		filter.Status = &published
	}

	startups, err := e.store.ListStartups(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list user startups: %v", err))
	}

	return dto.NewStartupListResponse(startups, owner), nil
}

func (e *executor) UpdateStartup(ctx context.Context, caller Caller, id string, req *dto.UpdateStartupRequest) (*dto.StartupResponse, error) {
	patch := req.ToPatch()
	if err := patch.ResolveFiles(e.resolveURL(ctx)); err != nil {
		return nil, apierrors.FromDomain(err, "Failed to resolve storage id")
	}

	var released []string
	startup, err := e.mutateOwnedStartup(ctx, caller, id, func(s *schema.Startup) error {
		prev := *s
		patch.Apply(s)
		if err := domain.EnsureDistinctStorageRefs(s.StorageIDs()...); err != nil {
			return err
		}

		replaced := schema.ReplacedStorageIDs(&prev, s)

		// a replaced id moved into another slot is still referenced
		released = unreferenced(replaced, s.StorageIDs())
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(released) > 0 {
		_ = e.releaseBlobs(ctx, released...)
	}

	return dto.NewStartupResponse(startup, true), nil
}

func (e *executor) resolveURL(ctx context.Context) func(storageID string) (string, error) {
	return func(storageID string) (string, error) {
		return e.blobs.ResolveURL(ctx, storageID)
	}
}

func unreferenced(ids []string, kept []string) []string {
	var out []string
	for _, id := range ids {
		inUse := false
		for _, k := range kept {
			if k == id {
				inUse = true
				break
			}
		}
		if !inUse {
			out = append(out, id)
		}
	}
	return out
}

func (e *executor) DeleteStartup(ctx context.Context, caller Caller, id string) error {
	a, err := e.resolveActor(ctx, caller)
	if err != nil {
		return err
	}

	existing, err := e.store.GetStartupByID(ctx, id)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get startup: %v", err))
	}
	if existing == nil {
		return apierrors.NewNotFoundError("Startup not found")
	}
	if !a.owns(existing) {
		return apierrors.FromDomain(domain.ErrForbidden, "")
	}

	deleted, err := e.store.DeleteStartup(ctx, id)
	if err != nil {
		return apierrors.FromDomain(err, "Failed to delete startup")
	}

	if err := e.releaseBlobs(ctx, deleted.StorageIDs()...); err != nil {
		logger.WarnCtx(ctx, "Startup deleted with unreleased blobs",
			zap.String("startup_id", id),
			zap.Error(err),
		)
	}

	logger.InfoCtx(ctx, "Startup deleted", zap.String("startup_id", id))
	return nil
}

func (e *executor) SetApproval(ctx context.Context, id string, approved bool) (*dto.StartupResponse, error) {
	startup, err := e.store.UpdateStartup(ctx, id, func(s *schema.Startup) error {
		if s.Approved == approved {
			return store.ErrNoop
		}
		s.Approved = approved
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to set approval")
	}

	return dto.NewStartupResponse(startup, true), nil
}

func (e *executor) SetFeatured(ctx context.Context, id string, featured bool) (*dto.StartupResponse, error) {
	startup, err := e.store.UpdateStartup(ctx, id, func(s *schema.Startup) error {
		if s.Featured == featured {
			return store.ErrNoop
		}
		s.Featured = featured
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to set featured")
	}

	return dto.NewStartupResponse(startup, true), nil
}

func (e *executor) ReconcileCounters(ctx context.Context, id string) (*dto.ReconcileResponse, error) {
	drifted := false
	startup, err := e.store.UpdateStartup(ctx, id, func(s *schema.Startup) error {
		if !s.ReconcileCounters() {
			return store.ErrNoop
		}
		drifted = true
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to reconcile counters")
	}

	if drifted {
		logger.InfoCtx(ctx, "Engagement counters reconciled",
			zap.String("startup_id", id),
			zap.Int64("views", startup.Views),
			zap.Int64("upvotes", startup.Upvotes),
			zap.Int64("website_visits", startup.WebsiteVisits),
		)
	}

	return &dto.ReconcileResponse{
		Drifted:       drifted,
		Views:         startup.Views,
		Upvotes:       startup.Upvotes,
		WebsiteVisits: startup.WebsiteVisits,
	}, nil
}
