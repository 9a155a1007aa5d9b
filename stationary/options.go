// SPDX-License-Identifier: MIT

package stationary

import "github.com/katalvlaran/ctmc/matrix"

const (
	// DefaultMaxDenominator bounds the denominators of Rationals.
	DefaultMaxDenominator = 1_000_000

	// machEps is the float64 unit roundoff 2⁻⁵².
	machEps = 2.220446049250313e-16

	// sqrtEps floors the undershoot flushed to 0 after the solve.
	sqrtEps = 1.4901161193847656e-08

	// maxUndershoot caps that bound for ill-conditioned systems; anything more
	// negative is a failed solve.
	maxUndershoot = 1e-4

	// sumTolerance is the floor of the |Σπ − 1| check before renormalisation.
	sumTolerance = 1e-9

	panicMaxDenInvalid = "stationary: WithMaxDenominator: must be >= 1"
)

// Option configures Solve.
type Option func(*options)

type options struct {
	matrixOpts []matrix.Option
	maxDen     int64
}

// WithRCond sets the singular-value cut-off of the pseudo-inverse
// (see matrix.WithRCond; panics on invalid values).
func WithRCond(rcond float64) Option {
	set := matrix.WithRCond(rcond)

	return func(o *options) { o.matrixOpts = append(o.matrixOpts, set) }
}

// WithMaxSweeps caps the Jacobi sweeps of the SVD (see matrix.WithMaxSweeps).
func WithMaxSweeps(sweeps int) Option {
	set := matrix.WithMaxSweeps(sweeps)

	return func(o *options) { o.matrixOpts = append(o.matrixOpts, set) }
}

// WithMaxDenominator bounds the denominators used by Distribution.Rationals.
// Panics when d < 1.
func WithMaxDenominator(d int64) Option {
	if d < 1 {
		panic(panicMaxDenInvalid)
	}

	return func(o *options) { o.maxDen = d }
}

func gatherOptions(user ...Option) options {
	o := options{maxDen: DefaultMaxDenominator}
	for _, set := range user {
		set(&o)
	}

	return o
}
