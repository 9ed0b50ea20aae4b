package controller_test

import (
	"net/http"
	"net/http/httptest"
	"newsletter/pkg/controller"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw, err := controller.WithMetrics(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	require.Equal(t, 1, testutil.CollectAndCount(reg, "http_request_duration_seconds"))

	_, err = controller.WithMetrics(reg)
	require.Error(t, err, "registering twice must fail")
}
