package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(prometheus.Labels{"service": "fanzcore"}, registry)

var (
	storeLatencyBuckets = []float64{
		0.5, 1, 2.5, // local redis
		5, 10, 25, // cross-zone
		50, 100, 250, // near the store timeout
	}

	RateLimitDecisions = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanz_ratelimit_decisions_total",
			Help: "Rate limit decisions by bucket and outcome",
		},
		[]string{"bucket", "outcome"}, // outcome: allowed, rejected, failed_open
	)

	RateLimitFailOpen = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanz_ratelimit_fail_open_total",
			Help: "Requests admitted because the counter store was unavailable",
		},
		[]string{"bucket"},
	)

	RateLimitStoreLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fanz_ratelimit_store_latency_ms",
			Help:    "Counter store round trip in milliseconds",
			Buckets: storeLatencyBuckets,
		},
		[]string{"bucket"},
	)

	NotificationsCreated = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanz_notifications_created_total",
			Help: "Persisted notifications by type",
		},
		[]string{"type"},
	)

	NotificationPushes = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanz_notification_pushes_total",
			Help: "Live push attempts per connection by outcome",
		},
		[]string{"outcome"}, // delivered, failed, suppressed
	)

	LiveConnections = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "fanz_live_connections",
			Help: "Open realtime notification connections on this instance",
		},
	)
)

var initOnce sync.Once

// Initialize adds the process collector and makes the fanzcore registry
// the default gatherer. Safe to call more than once.
func Initialize() {
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Registry() *prometheus.Registry {
	return registry
}
