package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/xavierca1/sales-command/internal/session"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	sortChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_sort_changes_total",
			Help: "Total number of sort header clicks",
		},
		[]string{"field"},
	)

	selectionChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_selection_changes_total",
			Help: "Total number of selection toggles",
		},
		[]string{"scope"},
	)

	leadActivations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_lead_activations_total",
			Help: "Total number of lead detail panels opened",
		},
	)

	sessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_sessions_created_total",
			Help: "Total number of dashboard sessions created",
		},
	)

	rateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Metrics labels requests by route pattern so /dashboard/leads/{id}/open
// stays a single series.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := routePattern(r)
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(statusOf(ww))

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

func RecordSortChange(field string) {
	sortChanges.WithLabelValues(field).Inc()
}

// RecordSelectionChange takes "all" or "row".
func RecordSelectionChange(scope string) {
	selectionChanges.WithLabelValues(scope).Inc()
}

func RecordLeadActivation() {
	leadActivations.Inc()
}

// RegisterSessionGauge exposes the live session count. Call it once per process.
func RegisterSessionGauge(store *session.Store) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "dashboard_active_sessions",
			Help: "Number of live dashboard sessions",
		},
		func() float64 { return float64(store.Len()) },
	)
}

func recordSessionCreated() {
	sessionsCreated.Inc()
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func statusOf(ww chimw.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
