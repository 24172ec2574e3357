package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/dotes/internal/accounts/metrics"
	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var _ service.Observer = (*metrics.Metrics)(nil)

func TestObserver(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.ObserveLogin(service.ResultSuccess)
	m.ObserveLogin(service.ResultSuccess)
	m.ObserveLogin(service.ResultFailure)
	m.ObserveRegistration(true)
	m.ObserveRegistration(false)
	m.ObserveRegistration(false)
	m.ObserveTokenCheck(service.ResultInvalid)

	require.InDelta(t, 2, testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues("success")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues("failure")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues("admin")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues("member")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.TokenChecksTotal.WithLabelValues("invalid")), 0)
}

func TestHTTPMiddleware(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := m.HTTPMiddleware(mux)

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "GET /items/{id}", "418")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")), 0)
	require.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestHandler(t *testing.T) {
	m := metrics.NewMetrics(nil)
	m.ObserveLogin(service.ResultSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), `dotes_accounts_login_attempts_total{result="success"} 1`))
	require.True(t, strings.Contains(string(body), "go_goroutines"))
}
