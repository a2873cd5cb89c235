package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
// Tracks check outcomes, cache effectiveness, and provider round-trip times.
type Metrics struct {
	ChecksTotal      *prometheus.CounterVec
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	ProviderDuration prometheus.Histogram
}

// New creates a new Metrics instance with all eligibility module metrics registered.
func New() *Metrics {
	return &Metrics{
		ChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "carelink_eligibility_checks_total",
			Help: "Total number of eligibility checks by verification outcome",
		}, []string{"status"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "carelink_eligibility_cache_hits_total",
			Help: "Total number of checks served from the result cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "carelink_eligibility_cache_misses_total",
			Help: "Total number of checks that invoked the verification provider",
		}),
		ProviderDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "carelink_eligibility_provider_duration_seconds",
			Help:    "Duration of provider verification calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 3, 5},
		}),
	}
}

// IncrementChecks records one completed check with its verification outcome.
func (m *Metrics) IncrementChecks(status string) {
	m.ChecksTotal.WithLabelValues(status).Inc()
}

// IncrementCacheHit records a check served from cache.
func (m *Metrics) IncrementCacheHit() {
	m.CacheHits.Inc()
}

// IncrementCacheMiss records a check that had to invoke the provider.
func (m *Metrics) IncrementCacheMiss() {
	m.CacheMisses.Inc()
}

// ObserveProviderCall records the duration of a provider verification call.
// Call with time.Now() at the start of the call.
func (m *Metrics) ObserveProviderCall(start time.Time) {
	m.ProviderDuration.Observe(time.Since(start).Seconds())
}
