package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sevadex",
			Name:      "search_queries_total",
			Help:      "Total number of search queries by outcome",
		},
		[]string{"outcome"}, // ok / partial / rejected / cancelled
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sevadex",
			Name:      "search_duration_seconds",
			Help:      "Aggregate search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	SearchSourceFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sevadex",
			Name:      "search_source_failures_total",
			Help:      "Total per-source fetch failures during aggregation",
		},
		[]string{"source"},
	)

	SearchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sevadex",
			Name:      "search_results_returned",
			Help:      "Merged result count per query",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
	)
)

// RegisterSearchMetrics registers search metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchSourceFailuresTotal)
	prometheus.MustRegister(SearchResultsReturned)
}
