// SPDX-License-Identifier: MIT

package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ctmc/graph"
	"github.com/katalvlaran/ctmc/internal/logger"
	"github.com/katalvlaran/ctmc/internal/metrics"
	"github.com/katalvlaran/ctmc/model"
	"github.com/katalvlaran/ctmc/stationary"
	"github.com/katalvlaran/ctmc/transient"
	"github.com/katalvlaran/ctmc/validate"
)

// Solver names used in durations and metrics.
const (
	SolverGraph      = "graph"
	SolverStationary = "stationary"
	SolverTransient  = "transient"
)

// Error wraps a pipeline failure with the request it belongs to.
type Error struct {
	RequestID string
	Stage     string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("analysis %s: %s: %v", e.RequestID, e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Analyzer runs analyses. The zero value is not usable; call New.
// An Analyzer holds configuration only and is safe for concurrent use.
type Analyzer struct {
	workers        int
	metrics        *metrics.Metrics
	stationaryOpts []stationary.Option
}

// New returns an Analyzer with one transient worker and no metrics.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{workers: transient.DefaultWorkers}
	for _, set := range opts {
		set(a)
	}

	return a
}

// Run validates m and computes the graph, the stationary distribution and the
// transient trajectory.
//
// Implementation:
//   - Stage 1: Validate (parameters, Q, p(0)); nothing is computed on failure.
//   - Stage 2: graph.Build on Q.
//   - Stage 3: stationary.Solve and transient.Solve concurrently; the first
//     error cancels the other through the shared context.
//
// Errors:
//   - *Error wrapping *validate.StructuralError / *validate.ValueError
//     (Stage "validate"), *stationary.SolverFailure (Stage "stationary"),
//     transient failures or ctx.Err() (Stage "transient").
func (a *Analyzer) Run(ctx context.Context, m *model.Model) (*Report, error) {
	id := uuid.NewString()
	started := time.Now()
	logger.Debug("analysis started", "request_id", id, "states", m.Size, "steps", m.Steps)

	checks, err := Validate(m)
	if err != nil {
		a.metrics.CountAnalysis(metrics.OutcomeInvalid)
		a.metrics.CountValidationFailure(kindLabel(err))
		logger.Warn("model rejected", "request_id", id, "err", err)

		return nil, &Error{RequestID: id, Stage: "validate", Err: err}
	}

	durations := make(map[string]float64, 3)
	t0 := time.Now()
	g, err := graph.Build(m.Matrix)
	if err != nil {
		return nil, a.fail(id, SolverGraph, err)
	}
	durations[SolverGraph] = time.Since(t0).Seconds()

	var (
		dist         stationary.Distribution
		traj         transient.Trajectory
		dStat, dTran time.Duration
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		t := time.Now()
		var err error
		if dist, err = stationary.Solve(m.Matrix, a.stationaryOpts...); err != nil {
			return &Error{RequestID: id, Stage: SolverStationary, Err: err}
		}
		dStat = time.Since(t)

		return nil
	})
	eg.Go(func() error {
		t := time.Now()
		var err error
		traj, err = transient.Solve(gctx, m.InitialVector, m.Matrix, m.TimeEnd, m.Steps,
			transient.WithWorkers(a.workers),
			transient.WithObserver(func(transient.Sample) { a.metrics.CountSample() }))
		if err != nil {
			return &Error{RequestID: id, Stage: SolverTransient, Err: err}
		}
		dTran = time.Since(t)

		return nil
	})
	if err = eg.Wait(); err != nil {
		var ae *Error
		if errors.As(err, &ae) {
			return nil, a.fail(id, ae.Stage, ae.Err)
		}

		return nil, a.fail(id, SolverTransient, err)
	}
	a.metrics.ObserveSolver(SolverStationary, dStat)
	a.metrics.ObserveSolver(SolverTransient, dTran)
	durations[SolverStationary] = dStat.Seconds()
	durations[SolverTransient] = dTran.Seconds()

	residual, err := dist.Residual(m.Matrix)
	if err != nil {
		return nil, a.fail(id, SolverStationary, err)
	}

	a.metrics.CountAnalysis(metrics.OutcomeOK)
	logger.Info("analysis finished", "request_id", id, "states", m.Size,
		"edges", g.Size(), "elapsed", time.Since(started))

	return &Report{
		RequestID: id,
		States:    m.Size,
		Parameters: Parameters{
			TimeEnd:   m.TimeEnd,
			Steps:     m.Steps,
			Precision: m.Precision,
		},
		Validation: checks,
		Graph:      Summarize(g),
		Stationary: Stationary{Pi: dist.Pi, Rationals: dist.Rationals(), Residual: residual},
		Transient:  traj,
		Durations:  durations,
	}, nil
}

// fail records a post-validation failure and wraps it.
func (a *Analyzer) fail(id, stage string, err error) error {
	outcome := metrics.OutcomeFailed
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		outcome = metrics.OutcomeCanceled
	}
	a.metrics.CountAnalysis(outcome)
	logger.Error("analysis failed", "request_id", id, "stage", stage, "err", err)

	return &Error{RequestID: id, Stage: stage, Err: err}
}

// Summarize extracts the structural facts of g.
func Summarize(g *graph.Graph) GraphSummary {
	absorbing := g.Absorbing()
	if absorbing == nil {
		absorbing = []int{}
	}

	return GraphSummary{
		States:      g.Order(),
		Edges:       g.Edges(),
		Absorbing:   absorbing,
		Irreducible: g.IsIrreducible(),
		Classes:     g.Classes(),
	}
}

// kindLabel names the violation class of err for metrics.
func kindLabel(err error) string {
	if k := validate.KindOf(err); k != 0 {
		return k.String()
	}
	if errors.Is(err, validate.ErrStructural) {
		return "Structural"
	}

	return "Other"
}
