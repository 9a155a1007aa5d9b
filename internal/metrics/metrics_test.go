// SPDX-License-Identifier: MIT
package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctmc/internal/metrics"
)

func TestCounters(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.CountAnalysis(metrics.OutcomeOK)
	m.CountAnalysis(metrics.OutcomeOK)
	m.CountValidationFailure("RowSumNonzero")
	m.CountSample()
	m.ObserveSolver("stationary", 3*time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry())
	require.NoError(t, err)
	require.Equal(t, 4, n)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `ctmc_analyses_total{outcome="ok"} 2`)
	require.Contains(t, string(body), `ctmc_validation_failures_total{kind="RowSumNonzero"} 1`)
	require.Contains(t, string(body), "ctmc_transient_samples_total 1")
	require.Contains(t, string(body), `ctmc_solver_duration_seconds_count{solver="stationary"} 1`)
}

func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.CountAnalysis(metrics.OutcomeFailed)
		m.CountValidationFailure("x")
		m.CountSample()
		m.ObserveSolver("transient", time.Second)
	})
}
