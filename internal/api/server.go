// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the newsletter service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"newsletter/internal/api/handler"
	"newsletter/internal/config"
	"newsletter/pkg/controller"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

const (
	specPath = "/specs/openapi.yaml"
	docsPath = "/docs/"
)

// openAPISpec describes the public endpoints of the service.
//
//go:embed specs/openapi.yaml
var openAPISpec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	Handler handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the timeout applied via http.TimeoutHandler to every request
	// except publishing a newsletter.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins is the CORS origin allow list.
	AllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Handler: handler.Options{
			SessionCookieName: cfg.Session.CookieName,
			SecureCookies:     cfg.Session.Secure,
			LoginLimiter:      controller.NewIPRateLimiter(cfg.HTTP.LoginRateLimit, cfg.HTTP.LoginRateBurst),
		},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

// Deps are the services and metric registries the server is built over.
type Deps struct {
	handler.Deps

	// Registerer receives the HTTP metrics; Gatherer is served on MetricsPath.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) and request duration histogram
// - Embedded OpenAPI spec and Swagger UI
// - the login, admin, subscription and newsletter routes
// - pprof endpoints for profiling and a health check
// It also wraps the router with CORS and logging middlewares and applies a request timeout
// to every route but the newsletter publish endpoint.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	r := chi.NewRouter()

	withMetrics, err := controller.WithMetrics(deps.Registerer)
	if err != nil {
		return nil, fmt.Errorf("could not register http metrics: %w", err)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", controller.RequestIDHeader},
		ExposedHeaders:   []string{controller.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(withMetrics)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// specs file
	r.Get(specPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(openAPISpec)
	})
	// swagger playground
	r.Handle(docsPath+"*", v5emb.New("Newsletter Service", specPath, docsPath))

	// pprof
	r.Handle(controller.PprofPrefix+"*", controller.PprofMux())

	r.Mount("/", handler.New(deps.Deps, opts.Handler).Routes())

	// logger
	h := controller.WithLogger(r)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           withRequestTimeout(h, opts.RequestTimeout),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// withRequestTimeout bounds every request by timeout except publishing a
// newsletter, which runs until every confirmed subscriber has an outcome.
// The publish response is written after the whole dispatch, so the server's
// write deadline is lifted for it as well.
func withRequestTimeout(h http.Handler, timeout time.Duration) http.Handler {
	timed := http.TimeoutHandler(h, timeout, `{"code":"INTERNAL","message":"request timed out"}`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != handler.NewslettersPath {
			timed.ServeHTTP(w, r)

			return
		}

		// unsupported on recorders and wrapped writers, nothing to lift there
		_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})
		h.ServeHTTP(w, r)
	})
}
