package health

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vendora",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendora",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ViewsCounted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vendora",
			Subsystem: "engagement",
			Name:      "views_counted_total",
			Help:      "Item views that passed the idempotency check",
		},
	)

	LikesToggled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendora",
			Subsystem: "engagement",
			Name:      "likes_toggled_total",
			Help:      "Like toggles by resulting state",
		},
		[]string{"state"},
	)
)
