package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/metrics"
	"github.com/feral-file/launchpad/internal/store"
	"github.com/feral-file/launchpad/internal/store/schema"
)

func (e *executor) CaptureLeads(ctx context.Context, id string, asset domain.Asset, leads []domain.Lead) (*dto.LeadCaptureResponse, error) {
	now := e.clock.Now()
	for i := range leads {
		if leads[i].Timestamp == nil {
			leads[i].Timestamp = &now
		}
	}

	added, startup, err := e.mergeLeads(ctx, id, asset, leads, now)
	if err != nil {
		return nil, err
	}

	return &dto.LeadCaptureResponse{
		Asset: asset,
		Added: added,
		Total: len(startup.Leads(asset)),
	}, nil
}

// mergeLeads appends the leads not already present and publishes the capture.
// Nothing is written when every lead is a duplicate.
func (e *executor) mergeLeads(ctx context.Context, id string, asset domain.Asset, leads []domain.Lead, now time.Time) (int, *schema.Startup, error) {
	added := 0
	startup, err := e.store.UpdateStartup(ctx, id, func(s *schema.Startup) error {
		merged, n := domain.MergeLeads(s.Leads(asset), leads)
		if n == 0 {
			return store.ErrNoop
		}
		s.SetLeads(asset, merged)
		s.UpdatedAt = now
		added = n
		return nil
	})
	if err != nil {
		return 0, nil, apierrors.FromDomain(err, "Failed to capture leads")
	}

	if added > 0 {
		metrics.LeadsCaptured.WithLabelValues(string(asset)).Add(float64(added))

		event := &domain.LeadCapturedEvent{
			EventID:    ulid.Make().String(),
			Asset:      asset,
			StartupID:  id,
			Added:      added,
			OccurredAt: now,
		}
		if err := e.publisher.PublishLeadCaptured(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish lead captured event",
				zap.String("startup_id", id),
				zap.String("asset", string(asset)),
				zap.Error(err),
			)
		}
	}

	return added, startup, nil
}

func (e *executor) AccessAsset(ctx context.Context, id string, asset domain.Asset, req *dto.AccessAssetRequest, clientIP string) (*dto.AssetAccessResponse, error) {
	startup, err := e.store.GetStartupByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get startup: %v", err))
	}
	if startup == nil {
		return nil, apierrors.NewNotFoundError("Startup not found")
	}

	gate := startup.Gate(asset)
	if !gate.Shown {
		return nil, apierrors.FromDomain(domain.ErrAssetHidden, "")
	}

	url, _ := startup.AssetFile(asset)
	if url == "" {
		return nil, apierrors.FromDomain(domain.ErrAssetNotSet, "")
	}

	if err := gate.Verify(req.Password); err != nil {
		return nil, apierrors.FromDomain(err, "Failed to verify asset password")
	}

	if req.Lead != nil {
		now := e.clock.Now()
		lead := *req.Lead
		if lead.Timestamp == nil {
			lead.Timestamp = &now
		}
		if lead.IPAddress == "" {
			lead.IPAddress = clientIP
		}
		if _, _, err := e.mergeLeads(ctx, id, asset, []domain.Lead{lead}, now); err != nil {
			return nil, err
		}
	}

	return &dto.AssetAccessResponse{Asset: asset, URL: url}, nil
}

func (e *executor) SetAssetPassword(ctx context.Context, caller Caller, id string, asset domain.Asset, password string) (*dto.StartupResponse, error) {
	startup, err := e.mutateOwnedStartup(ctx, caller, id, func(s *schema.Startup) error {
		gate := s.Gate(asset)
		if err := gate.SetPassword(password); err != nil {
			return err
		}
		s.SetGate(asset, gate)
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewStartupResponse(startup, true), nil
}

func (e *executor) SetAssetLock(ctx context.Context, caller Caller, id string, asset domain.Asset, locked bool) (*dto.StartupResponse, error) {
	startup, err := e.mutateOwnedStartup(ctx, caller, id, func(s *schema.Startup) error {
		gate := s.Gate(asset)
		if gate.Locked == locked {
			return store.ErrNoop
		}
		if err := gate.SetLocked(locked); err != nil {
			return err
		}
		s.SetGate(asset, gate)
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewStartupResponse(startup, true), nil
}

func (e *executor) SetAssetVisibility(ctx context.Context, caller Caller, id string, asset domain.Asset, shown bool) (*dto.StartupResponse, error) {
	startup, err := e.mutateOwnedStartup(ctx, caller, id, func(s *schema.Startup) error {
		gate := s.Gate(asset)
		if gate.Shown == shown {
			return store.ErrNoop
		}
		gate.Shown = shown
		s.SetGate(asset, gate)
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewStartupResponse(startup, true), nil
}

func (e *executor) DeleteAsset(ctx context.Context, caller Caller, id string, asset domain.Asset) (*dto.StartupResponse, error) {
	var released string
	startup, err := e.mutateOwnedStartup(ctx, caller, id, func(s *schema.Startup) error {
		_, released = s.AssetFile(asset)
		s.SetAssetFile(asset, "", "")

		gate := s.Gate(asset)
		gate.Shown = false
		s.SetGate(asset, gate)
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if released != "" {
		_ = e.releaseBlobs(ctx, released)
	}

	return dto.NewStartupResponse(startup, true), nil
}
