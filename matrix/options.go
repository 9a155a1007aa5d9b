// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes the behavior of at least one kernel.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultRCond is the relative cut-off for small singular values in
	// PseudoInverse: σ_i ≤ rcond·σ_max is treated as zero.
	DefaultRCond = 1e-12

	// DefaultMaxSweeps caps the number of one-sided Jacobi sweeps in SVD.
	// Convergence is quadratic; 60 sweeps is far beyond what n ≤ 100 needs.
	DefaultMaxSweeps = 60
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRCondInvalid     = "matrix: WithRCond: rcond must be finite, in [0,1)"
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rcond     float64 // [0,1); DefaultRCond
	maxSweeps int     // > 0; DefaultMaxSweeps
}

// WithRCond sets the relative singular-value cut-off of PseudoInverse.
// Panics when rcond is not a finite value in [0,1).
//
// AI-Hints:
//   - Raise rcond (e.g. 1e-9) for generators whose rates span many orders of
//     magnitude and that are close to reducible.
func WithRCond(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 || rcond >= 1 {
		panic(panicRCondInvalid)
	}

	return func(o *Options) { o.rcond = rcond }
}

// WithMaxSweeps caps the number of Jacobi sweeps in SVD. Panics on sweeps <= 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// NewMatrixOptions resolves setters into an Options snapshot (exported for tests
// and for callers that want to inspect the effective configuration).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// RCond returns the resolved singular-value cut-off.
func (o Options) RCond() float64 { return o.rcond }

// MaxSweeps returns the resolved Jacobi sweep budget.
func (o Options) MaxSweeps() int { return o.maxSweeps }

// gatherOptions applies user-provided setters on top of the defaults
// (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		rcond:     DefaultRCond,
		maxSweeps: DefaultMaxSweeps,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
