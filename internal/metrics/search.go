package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storesearch",
			Name:      "search_cache_total",
			Help:      "Search cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storesearch",
			Name:      "search_duration_seconds",
			Help:      "Full search (fetch + rank) duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	SearchCandidatesScanned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storesearch",
			Name:      "search_candidates_scanned",
			Help:      "Number of catalog candidates scored per search",
			Buckets:   []float64{10, 50, 100, 500, 1000, 2500, 5000},
		},
	)

	CatalogFetchRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storesearch",
			Name:      "catalog_fetch_retries_total",
			Help:      "Total transient catalog fetch failures that were retried",
		},
	)

	CatalogFetchFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storesearch",
			Name:      "catalog_fetch_failures_total",
			Help:      "Total catalog fetches that failed permanently",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchCacheTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchCandidatesScanned)
	prometheus.MustRegister(CatalogFetchRetriesTotal)
	prometheus.MustRegister(CatalogFetchFailuresTotal)
	searchMetricsRegistered = true
}
