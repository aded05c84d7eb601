package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog load
	CatalogMoviesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies_loaded",
			Help: "Number of movie records in the catalog index",
		},
	)

	CatalogReviewsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_reviews_loaded",
			Help: "Number of review records in the review store",
		},
	)

	CatalogLoadSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_load_skipped_total",
			Help: "Source entries or resources skipped while loading the catalog",
		},
		[]string{"resource"},
	)

	// Search
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Search queries evaluated by the search engine",
		},
		[]string{"kind"}, // "criteria", "name", "genre"
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results",
			Help:    "Number of movies returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route"},
	)
)

// RecordCatalogLoad publishes the sizes of a freshly loaded catalog.
func RecordCatalogLoad(movies, reviews int) {
	CatalogMoviesLoaded.Set(float64(movies))
	CatalogReviewsLoaded.Set(float64(reviews))
}

func RecordLoadSkipped(resource string) {
	CatalogLoadSkipped.WithLabelValues(resource).Inc()
}

func RecordSearch(kind string, results int) {
	SearchRequests.WithLabelValues(kind).Inc()
	SearchResults.Observe(float64(results))
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
