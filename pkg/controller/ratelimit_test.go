package controller_test

import (
	"net/http"
	"net/http/httptest"
	"newsletter/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithRateLimit_PerIP(t *testing.T) {
	limiter := controller.NewIPRateLimiter(0.001, 2)
	handler := controller.WithRateLimit(limiter, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	require.Equal(t, http.StatusNoContent, do("10.0.0.1"))
	require.Equal(t, http.StatusNoContent, do("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))

	// other clients have their own budget
	require.Equal(t, http.StatusNoContent, do("10.0.0.2"))
}

func TestWithRateLimit_IgnoresForwardingHeaders(t *testing.T) {
	limiter := controller.NewIPRateLimiter(0.001, 2)
	handler := controller.WithRateLimit(limiter, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	require.Equal(t, http.StatusNoContent, do("203.0.113.1"))
	require.Equal(t, http.StatusNoContent, do("203.0.113.2"))
	require.Equal(t, http.StatusTooManyRequests, do("203.0.113.3"))
	require.Equal(t, http.StatusTooManyRequests, do("203.0.113.4"))
}

func TestRemoteIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	req.RemoteAddr = "10.0.0.1:5555"
	require.Equal(t, "10.0.0.1", controller.RemoteIP(req))
	require.Equal(t, "203.0.113.9", controller.GetClientIP(req))

	req.RemoteAddr = "@"
	require.Equal(t, "@", controller.RemoteIP(req))
}
