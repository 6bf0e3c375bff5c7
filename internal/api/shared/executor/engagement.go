package executor

import (
	"context"

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

func (e *executor) RecordEngagement(ctx context.Context, id string, kind domain.EngagementKind, events []domain.Event) (*dto.EngagementResponse, error) {
	if !kind.Valid() {
		return nil, apierrors.NewBadRequestError("Invalid engagement kind", string(kind))
	}

	now := e.clock.Now()
	events = domain.StampEvents(events, now)

	var total int64
	startup, err := e.store.UpdateStartup(ctx, id, func(s *schema.Startup) error {
		if len(events) == 0 {
			return store.ErrNoop
		}
		total = s.AppendEngagement(kind, events)
		s.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to record engagement")
	}

	if len(events) == 0 {
		return &dto.EngagementResponse{Kind: kind, Recorded: 0, Total: counter(startup, kind)}, nil
	}

	metrics.EngagementRecorded.WithLabelValues(string(kind)).Add(float64(len(events)))

	event := &domain.EngagementEvent{
		EventID:    ulid.Make().String(),
		Kind:       kind,
		StartupID:  id,
		Count:      len(events),
		Total:      total,
		OccurredAt: now,
	}
	if err := e.publisher.PublishEngagement(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish engagement event",
			zap.String("startup_id", id),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}

	return &dto.EngagementResponse{Kind: kind, Recorded: len(events), Total: total}, nil
}

func counter(s *schema.Startup, kind domain.EngagementKind) int64 {
	switch kind {
	case domain.EngagementViews:
		return s.Views
	case domain.EngagementUpvotes:
		return s.Upvotes
	case domain.EngagementWebsiteVisits:
		return s.WebsiteVisits
	}
	return 0
}
