package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DatabaseQueryLatency records database query latency by outcome.
var DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "inkwell_database_query_latency_seconds",
	Help:    "Database query latency in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"outcome"})

// ObserveQuery records one database query with its outcome ("ok", "error"
// or "slow") and elapsed seconds.
func ObserveQuery(outcome string, seconds float64) {
	DatabaseQueryLatency.WithLabelValues(outcome).Observe(seconds)
}
