package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"newsletter/internal/api"
	"newsletter/internal/api/handler"
	"newsletter/internal/auth"
	"newsletter/internal/newsletter"
	"newsletter/pkg/controller"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/mailer"
	mockstorage "newsletter/pkg/storage/mock"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.SetupNop()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	srv, err := api.NewServer(api.Deps{Registerer: reg, Gatherer: reg}, api.Options{
		Handler:        handler.Options{SessionCookieName: "id"},
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"https://admin.example.com"},
	})
	require.NoError(t, err)

	return srv.Handler
}

func TestServer_OperationalEndpoints(t *testing.T) {
	h := newTestServer(t)

	for _, tc := range []struct {
		path        string
		contentType string
	}{
		{path: "/healthz"},
		{path: "/", contentType: "text/html; charset=utf-8"},
		{path: "/specs/openapi.yaml", contentType: "application/yaml"},
		{path: "/docs/"},
		{path: "/debug/pprof/"},
		{path: "/metrics"},
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, http.StatusOK, rec.Code, tc.path)
		require.NotEmpty(t, rec.Header().Get(controller.RequestIDHeader), tc.path)
		if tc.contentType != "" {
			require.Equal(t, tc.contentType, rec.Header().Get("Content-Type"), tc.path)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Contains(t, rec.Body.String(), `http_request_duration_seconds_count{method="GET",route="/healthz",status="200"}`)
}

func TestServer_CORS(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/newsletters", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_DuplicateMetricsRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	deps := api.Deps{Registerer: reg, Gatherer: reg}
	opts := api.Options{RequestTimeout: time.Second, MetricsPath: "/metrics"}

	_, err := api.NewServer(deps, opts)
	require.NoError(t, err)
	_, err = api.NewServer(deps, opts)
	require.Error(t, err)
}

type staticAuthenticator struct {
	handler.Authenticator
	userID domain.UserID
}

func (a staticAuthenticator) Authenticate(context.Context, auth.Credentials) (domain.UserID, error) {
	return a.userID, nil
}

type slowMailer struct {
	delay time.Duration
	sent  atomic.Int32
}

func (m *slowMailer) Send(ctx context.Context, _ mailer.Email) error {
	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	m.sent.Add(1)

	return nil
}

func TestServer_PublishOutlivesRequestTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscribers := mockstorage.NewMockSubscriberStorage(ctrl)

	var confirmed []domain.Subscriber
	for i := range 10 {
		confirmed = append(confirmed, domain.Subscriber{
			ID:     domain.SubscriberID(uuid.New()),
			Email:  fmt.Sprintf("reader%d@example.com", i),
			Name:   "reader",
			Status: domain.SubscriberStatusConfirmed,
		})
	}
	subscribers.EXPECT().ConfirmedSubscribers(gomock.Any()).Return(confirmed, nil)

	mail := &slowMailer{delay: 20 * time.Millisecond}
	dispatcher, err := newsletter.NewDispatcher(subscribers, mail, 1,
		metricnoop.NewMeterProvider(), tracenoop.NewTracerProvider())
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	srv, err := api.NewServer(api.Deps{
		Deps: handler.Deps{
			Auth:      staticAuthenticator{userID: domain.UserID(uuid.New())},
			Publisher: dispatcher,
		},
		Registerer: reg,
		Gatherer:   reg,
	}, api.Options{
		RequestTimeout: 50 * time.Millisecond,
		MetricsPath:    "/metrics",
	})
	require.NoError(t, err)

	ts := httptest.NewUnstartedServer(srv.Handler)
	ts.Config.WriteTimeout = 50 * time.Millisecond
	ts.Start()
	t.Cleanup(ts.Close)

	body := `{"title":"Issue #1","content":{"html":"<p>Hi</p>","text":"Hi"}}`
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		ts.URL+handler.NewslettersPath, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("admin", "secret")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report newsletter.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	require.Equal(t, 10, report.Total)
	require.Equal(t, 10, report.Sent)
	require.Equal(t, int32(10), mail.sent.Load())
}

type slowSubscriptions struct {
	handler.Subscriptions
	delay time.Duration
}

func (s slowSubscriptions) Subscribe(context.Context, domain.NewSubscriber) (*domain.Subscriber, error) {
	time.Sleep(s.delay)

	return &domain.Subscriber{}, nil
}

func TestServer_RequestTimeoutStillBoundsOtherRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	srv, err := api.NewServer(api.Deps{
		Deps:       handler.Deps{Subscriptions: slowSubscriptions{delay: 200 * time.Millisecond}},
		Registerer: reg,
		Gatherer:   reg,
	}, api.Options{
		RequestTimeout: 10 * time.Millisecond,
		MetricsPath:    "/metrics",
	})
	require.NoError(t, err)

	form := url.Values{"name": {"le guin"}, "email": {"ursula_le_guin@gmail.com"}}
	req := httptest.NewRequest(http.MethodPost, handler.SubscriptionsPath, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "request timed out")
}
