package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Favorite toggle actions and results used as label values.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"

	ResultOK           = "ok"
	ResultUserNotFound = "user_not_found"
	ResultConflict     = "already_favorited"
	ResultNotFound     = "favorite_not_found"
	ResultError        = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "starwars_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "starwars_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	favoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "starwars_favorite_toggles_total",
		Help: "Favorite add/remove attempts by kind and outcome",
	}, []string{"kind", "action", "result"})
)

// ObserveHTTPRequest records one served request. route is the router
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveFavoriteToggle counts one favorite add or remove attempt.
func ObserveFavoriteToggle(kind, action, result string) {
	favoriteToggles.WithLabelValues(kind, action, result).Inc()
}

// MetricsHandler serves the default registry in the prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
