package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignalFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodengine_signal_fetches_total",
			Help: "Total upstream signal fetches",
		},
		[]string{"source", "status"},
	)

	SignalFetchLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodengine_signal_fetch_latency_seconds",
			Help:    "Upstream signal fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	Rebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodengine_context_rebuilds_total",
			Help: "Total context snapshot rebuilds",
		},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodengine_context_cache_hits_total",
			Help: "Snapshot requests served from cache",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodengine_context_cache_misses_total",
			Help: "Snapshot requests that triggered a rebuild",
		},
	)

	currentTheme = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodengine_current_theme",
			Help: "Set to 1 for the currently resolved theme",
		},
		[]string{"theme"},
	)
)

// SetCurrentTheme marks the given theme as active and clears the rest, so the
// gauge always carries exactly one 1.
func SetCurrentTheme(theme string) {
	currentTheme.Reset()
	currentTheme.WithLabelValues(theme).Set(1)
}

// ObserveFetch records the outcome and latency of one upstream fetch.
func ObserveFetch(source string, seconds float64, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	SignalFetchesTotal.WithLabelValues(source, status).Inc()
	SignalFetchLatency.WithLabelValues(source).Observe(seconds)
}
