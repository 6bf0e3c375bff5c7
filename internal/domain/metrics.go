package domain

import (
	"fmt"
	"time"
)

// Metric is one periodic report submitted by a founder
type Metric struct {
	ID                string    `json:"id"`
	Period            string    `json:"period"`
	RevenueGrowthRate string    `json:"revenueGrowthRate"`
	RetentionRate     string    `json:"retentionRate"`
	CustomersAcquired string    `json:"customersAcquired"`
	ActiveUsers       string    `json:"activeUsers"`
	Report            string    `json:"report"`
	Timestamp         time.Time `json:"timestamp"`
}

// IsDummy reports whether the metric is the placeholder seeded at creation
func (m Metric) IsDummy() bool {
	return m.ID == DUMMY_METRIC_ID
}

// MetricPatch holds the fields of a metric to overwrite; nil leaves the field untouched
type MetricPatch struct {
	Period            *string    `json:"period,omitempty"`
	RevenueGrowthRate *string    `json:"revenueGrowthRate,omitempty"`
	RetentionRate     *string    `json:"retentionRate,omitempty"`
	CustomersAcquired *string    `json:"customersAcquired,omitempty"`
	ActiveUsers       *string    `json:"activeUsers,omitempty"`
	Report            *string    `json:"report,omitempty"`
	Timestamp         *time.Time `json:"timestamp,omitempty"`
}

// Apply merges the set fields of the patch onto m
func (p MetricPatch) Apply(m Metric) Metric {
	if p.Period != nil {
		m.Period = *p.Period
	}
	if p.RevenueGrowthRate != nil {
		m.RevenueGrowthRate = *p.RevenueGrowthRate
	}
	if p.RetentionRate != nil {
		m.RetentionRate = *p.RetentionRate
	}
	if p.CustomersAcquired != nil {
		m.CustomersAcquired = *p.CustomersAcquired
	}
	if p.ActiveUsers != nil {
		m.ActiveUsers = *p.ActiveUsers
	}
	if p.Report != nil {
		m.Report = *p.Report
	}
	if p.Timestamp != nil {
		m.Timestamp = *p.Timestamp
	}
	return m
}

// NewDummyMetric returns the placeholder entry seeded on new startups so
// dashboards have something to render before the first report
func NewDummyMetric(now time.Time) Metric {
	return Metric{
		ID:                DUMMY_METRIC_ID,
		Period:            "",
		RevenueGrowthRate: "0",
		RetentionRate:     "0",
		CustomersAcquired: "0",
		ActiveUsers:       "0",
		Report:            "",
		Timestamp:         now,
	}
}

// MergeMetrics drops the dummy entry from existing, then appends each incoming
// metric whose period is not already taken by a remaining existing entry.
// Existing entries win over incoming ones for the same period.
func MergeMetrics(existing, incoming []Metric) []Metric {
	filtered := make([]Metric, 0, len(existing)+len(incoming))
	periods := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		if m.IsDummy() {
			continue
		}
		filtered = append(filtered, m)
		periods[m.Period] = struct{}{}
	}

	for _, m := range incoming {
		if _, taken := periods[m.Period]; taken {
			continue
		}
		filtered = append(filtered, m)
	}

	return filtered
}

// EnsureUniqueMetricIDs fails with ErrDuplicateMetricID when two metrics share an id
func EnsureUniqueMetricIDs(metrics []Metric) error {
	seen := make(map[string]struct{}, len(metrics))
	for _, m := range metrics {
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateMetricID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}

// UpdateSingleMetric applies patch to the metric with the given id.
// The list is returned unchanged when no metric has that id.
func UpdateSingleMetric(metrics []Metric, id string, patch MetricPatch) (updated []Metric, found bool) {
	updated = make([]Metric, len(metrics))
	for i, m := range metrics {
		if m.ID == id {
			m = patch.Apply(m)
			found = true
		}
		updated[i] = m
	}
	if !found {
		return metrics, false
	}
	return updated, true
}

// DeleteMetric removes the metric with the given id; unknown ids leave the list unchanged
func DeleteMetric(metrics []Metric, id string) (remaining []Metric, found bool) {
	remaining = make([]Metric, 0, len(metrics))
	for _, m := range metrics {
		if m.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, m)
	}
	if !found {
		return metrics, false
	}
	return remaining, true
}
