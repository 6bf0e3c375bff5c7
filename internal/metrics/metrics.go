package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "launchpad"

// Registry holds every collector exposed on /metrics
var Registry = prometheus.NewRegistry()

var (
	// HTTPRequests counts API requests by route, method and status
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of API requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	// HTTPDuration observes API latency by route and method
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "API request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// EngagementRecorded counts appended engagement events by kind
	EngagementRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "engagement_events_total",
		Help:      "Engagement events appended to startup histories by kind.",
	}, []string{"kind"})

	// LeadsCaptured counts leads appended to deck and demo histories
	LeadsCaptured = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_captured_total",
		Help:      "Viewer leads appended to asset histories by asset.",
	}, []string{"asset"})

	// RateLimited counts requests rejected by the per-client limiter
	RateLimited = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-client rate limiter by route.",
	}, []string{"route"})

	// BlobReleaseFailures counts storage ids that could not be released
	BlobReleaseFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blob_release_failures_total",
		Help:      "Storage references whose release failed.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests,
		HTTPDuration,
		EngagementRecorded,
		LeadsCaptured,
		RateLimited,
		BlobReleaseFailures,
	)
}
