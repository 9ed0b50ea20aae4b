package controller

import (
	"net/http"
	"newsletter/pkg/metrics"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// WithMetrics returns a middleware observing request latency in the
// http_request_duration_seconds histogram. Routes are labelled by their chi
// pattern so that path parameters do not explode cardinality.
func WithMetrics(registerer prometheus.Registerer) (func(http.Handler) http.Handler, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route, method and status code.",
		Buckets: metrics.DefaultBuckets,
	}, []string{"route", "method", "status"})
	if err := registerer.Register(duration); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			duration.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
		})
	}, nil
}
