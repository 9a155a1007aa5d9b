// SPDX-License-Identifier: MIT
package analysis_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctmc/analysis"
	"github.com/katalvlaran/ctmc/internal/metrics"
	"github.com/katalvlaran/ctmc/model"
	"github.com/katalvlaran/ctmc/stationary"
	"github.com/katalvlaran/ctmc/validate"
)

func flipFlop() *model.Model {
	m := model.New([][]float64{{-1, 1}, {1, -1}}, []float64{1, 0})
	m.TimeEnd, m.Steps = 10, 100

	return m
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestRun_FlipFlop(t *testing.T) {
	t.Parallel()

	reg := metrics.New()
	a := analysis.New(analysis.WithWorkers(2), analysis.WithMetrics(reg))
	r, err := a.Run(context.Background(), flipFlop())
	require.NoError(t, err)

	require.NotEmpty(t, r.RequestID)
	require.Equal(t, 2, r.States)
	require.True(t, r.Validation.Valid)
	require.Equal(t, "intensity matrix is valid", r.Validation.Matrix.Message)
	require.Len(t, r.Graph.Edges, 2)
	require.True(t, r.Graph.Irreducible)
	require.Empty(t, r.Graph.Absorbing)
	require.InDeltaSlice(t, []float64{0.5, 0.5}, r.Stationary.Pi, 1e-12)
	require.Equal(t, []stationary.Rational{{Num: 1, Den: 2}, {Num: 1, Den: 2}}, r.Stationary.Rationals)
	require.Equal(t, 101, r.Transient.Len())
	require.InDeltaSlice(t, []float64{0.5, 0.5}, r.Transient.Final(), 1e-8)
	require.Contains(t, r.Durations, analysis.SolverStationary)

	body := scrape(t, reg)
	require.Contains(t, body, `ctmc_analyses_total{outcome="ok"} 1`)
	require.Contains(t, body, "ctmc_transient_samples_total 101")

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"requestId"`)
	require.Contains(t, string(raw), `"absorbing":[]`)

	var buf bytes.Buffer
	require.NoError(t, analysis.WriteText(&buf, r))
	require.Contains(t, buf.String(), "p0 = 0.5000 ≈ 1/2")
	require.Contains(t, buf.String(), "transient p(t) at t = 10.0000 (101 samples)")
}

func TestRun_Absorbing(t *testing.T) {
	t.Parallel()

	m := model.New([][]float64{{-1, 1}, {0, 0}}, []float64{1, 0})
	m.Steps = 20
	r, err := analysis.New().Run(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, []int{1}, r.Graph.Absorbing)
	require.False(t, r.Graph.Irreducible)
	require.InDeltaSlice(t, []float64{0, 1}, r.Stationary.Pi, 1e-12)
}

func TestRun_Rejected(t *testing.T) {
	t.Parallel()

	reg := metrics.New()
	m := model.New([][]float64{{-1, 1.01}, {1, -1}}, []float64{1, 0})
	r, err := analysis.New(analysis.WithMetrics(reg)).Run(context.Background(), m)
	require.Nil(t, r)
	require.ErrorIs(t, err, validate.ErrValue)
	require.Equal(t, validate.RowSumNonzero, validate.KindOf(err))

	var ae *analysis.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, "validate", ae.Stage)
	require.NotEmpty(t, ae.RequestID)

	body := scrape(t, reg)
	require.Contains(t, body, `ctmc_analyses_total{outcome="invalid"} 1`)
	require.Contains(t, body, `ctmc_validation_failures_total{kind="RowSumNonzero"} 1`)
}

func TestValidate_ReportsEveryCheck(t *testing.T) {
	t.Parallel()

	m := model.New([][]float64{{-1, 1}, {1, -1}}, []float64{0.5, 0.6})
	v, err := analysis.Validate(m)
	require.ErrorIs(t, err, validate.ErrValue)
	require.False(t, v.Valid)
	require.True(t, v.Parameters.Valid)
	require.True(t, v.Matrix.Valid)
	require.False(t, v.Vector.Valid)
	require.Equal(t, "ProbabilitySum", v.Vector.Kind)
	require.Contains(t, v.Vector.Message, "sum = 1.1")

	m = model.New([][]float64{{-1, 1}, {1, -1}}, []float64{1.5, -0.5})
	v, err = analysis.Validate(m)
	require.ErrorIs(t, err, validate.ErrValue)
	require.Equal(t, "NegativeProbability", v.Vector.Kind)
	require.NotNil(t, v.Vector.Col)
	require.Equal(t, 1, *v.Vector.Col)

	m = model.New([][]float64{{-1, 1}, {-1, 1}}, []float64{1, 0})
	v, err = analysis.Validate(m)
	require.Error(t, err)
	require.Equal(t, "OffDiagonalNegative", v.Matrix.Kind)
	require.Equal(t, 1, *v.Matrix.Row)
	require.Equal(t, 0, *v.Matrix.Col)
}

func TestRun_SolverFailure(t *testing.T) {
	t.Parallel()

	m := model.New([][]float64{
		{-3, 1, 2},
		{0.5, -0.5, 0},
		{4, 6, -10},
	}, []float64{1, 0, 0})
	m.Steps = 10
	a := analysis.New(analysis.WithStationaryOptions(stationary.WithMaxSweeps(1)))
	r, err := a.Run(context.Background(), m)
	require.Nil(t, r)
	require.ErrorIs(t, err, stationary.ErrSolverFailure)

	var ae *analysis.Error
	require.True(t, errors.As(err, &ae))
	require.Equal(t, analysis.SolverStationary, ae.Stage)
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	reg := metrics.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := analysis.New(analysis.WithMetrics(reg)).Run(ctx, flipFlop())
	require.Nil(t, r)
	require.ErrorIs(t, err, context.Canceled)
	require.Contains(t, scrape(t, reg), `ctmc_analyses_total{outcome="canceled"} 1`)
}

func TestWithWorkers_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { analysis.WithWorkers(0) })
}
