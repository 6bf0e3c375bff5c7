package executor

import (
	"context"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/store"
	"github.com/feral-file/launchpad/internal/store/schema"
)

func (e *executor) AddMetrics(ctx context.Context, caller Caller, id string, req *dto.AddMetricsRequest) (*dto.MetricsResponse, error) {
	now := e.clock.Now()
	incoming := make([]domain.Metric, len(req.Metrics))
	for i, m := range req.Metrics {
		incoming[i] = toMetric(m, now)
	}

	startup, err := e.mutateOwnedStartup(ctx, caller, id, func(s *schema.Startup) error {
		merged := domain.MergeMetrics(s.Metrics, incoming)
		// every period taken and no placeholder to purge
		if len(merged) == len(s.Metrics) && !slices.ContainsFunc(s.Metrics, domain.Metric.IsDummy) {
			return store.ErrNoop
		}
		if err := domain.EnsureUniqueMetricIDs(merged); err != nil {
			return err
		}

		s.Metrics = merged
		s.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MetricsResponse{Metrics: startup.Metrics}, nil
}

func toMetric(m dto.MetricInput, now time.Time) domain.Metric {
	metric := domain.Metric{
		ID:                m.ID,
		Period:            m.Period,
		RevenueGrowthRate: m.RevenueGrowthRate,
		RetentionRate:     m.RetentionRate,
		CustomersAcquired: m.CustomersAcquired,
		ActiveUsers:       m.ActiveUsers,
		Report:            m.Report,
		Timestamp:         now,
	}
	if metric.ID == "" {
		metric.ID = ulid.Make().String()
	}
	if m.Timestamp != nil {
		metric.Timestamp = *m.Timestamp
	}
	return metric
}

func (e *executor) UpdateMetric(ctx context.Context, caller Caller, id string, metricID string, patch domain.MetricPatch) (*dto.MetricsResponse, error) {
	startup, err := e.mutateOwnedStartup(ctx, caller, id, func(s *schema.Startup) error {
		updated, found := domain.UpdateSingleMetric(s.Metrics, metricID, patch)
		if !found {
			return store.ErrNoop
		}
		s.Metrics = updated
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MetricsResponse{Metrics: startup.Metrics}, nil
}

func (e *executor) DeleteMetric(ctx context.Context, caller Caller, id string, metricID string) (*dto.MetricsResponse, error) {
	startup, err := e.mutateOwnedStartup(ctx, caller, id, func(s *schema.Startup) error {
		remaining, found := domain.DeleteMetric(s.Metrics, metricID)
		if !found {
			return store.ErrNoop
		}
		s.Metrics = remaining
		s.UpdatedAt = e.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MetricsResponse{Metrics: startup.Metrics}, nil
}
