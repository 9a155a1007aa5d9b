// SPDX-License-Identifier: MIT

package stationary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ctmc/matrix"
	"github.com/katalvlaran/ctmc/validate"
)

// Distribution is a stationary probability vector π with π·Q = 0 and Σπ = 1.
type Distribution struct {
	// Pi holds π_i for each state i.
	Pi []float64

	maxDen int64
}

// Solve computes the stationary distribution of the generator q.
//
// Implementation:
//   - Stage 1: shape and finiteness checks (Q is assumed validated otherwise).
//   - Stage 2: A = [Qᵀ; 1ᵀ] of shape (n+1)×n, b = (0,…,0,1).
//   - Stage 3: π = A⁺·b with the SVD pseudo-inverse (minimum-norm least squares).
//   - Stage 4: flush undershoot within the rounding bound of the solve to 0 and
//     renormalise; reject larger negatives or non-finite entries.
//     The bound is max(√eps, (n+1)·eps·κ(A)), capped at 1e-4, with κ taken
//     from the singular values kept by the pseudo-inverse.
//
// Behavior highlights:
//   - Qᵀ is singular for every generator; the normalization row restores full
//     column rank for irreducible chains.
//   - For reducible chains the result is the minimum-norm solution, which mixes
//     the closed classes with positive weights.
//
// Errors:
//   - *validate.StructuralError, *validate.ValueError for malformed input.
//   - *SolverFailure (wrapping ErrSolverFailure) for any numerical failure.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
func Solve(q [][]float64, opts ...Option) (Distribution, error) {
	if err := validate.CheckSquare(q); err != nil {
		return Distribution{}, err
	}
	if err := validate.CheckFinite(q); err != nil {
		return Distribution{}, err
	}
	o := gatherOptions(opts...)

	a, err := augmented(q)
	if err != nil {
		return Distribution{}, &SolverFailure{Stage: "system", Err: err}
	}
	f, err := matrix.SVD(a, o.matrixOpts...)
	if err != nil {
		return Distribution{}, &SolverFailure{Stage: "pseudo-inverse", Err: err}
	}
	rcond := matrix.NewMatrixOptions(o.matrixOpts...).RCond()
	pinv, err := f.PseudoInverse(rcond)
	if err != nil {
		return Distribution{}, &SolverFailure{Stage: "pseudo-inverse", Err: err}
	}

	n := len(q)
	b := make([]float64, n+1)
	b[n] = 1
	pi, err := matrix.MatVec(pinv, b)
	if err != nil {
		return Distribution{}, &SolverFailure{Stage: "solution", Err: err}
	}
	if err = clean(pi, undershootBound(n, f.Cond(rcond))); err != nil {
		return Distribution{}, &SolverFailure{Stage: "solution", Err: err}
	}

	return Distribution{Pi: pi, maxDen: o.maxDen}, nil
}

// augmented builds [Qᵀ; 1ᵀ].
func augmented(q [][]float64) (*matrix.Dense, error) {
	n := len(q)
	a, err := matrix.NewDense(n+1, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = a.Set(j, i, q[i][j]); err != nil {
				return nil, err
			}
		}
	}
	for j = 0; j < n; j++ {
		if err = a.Set(n, j, 1); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// undershootBound is the largest negative entry attributed to rounding in a
// pseudo-inverse solve of n unknowns with condition number cond.
func undershootBound(n int, cond float64) float64 {
	bound := math.Max(sqrtEps, float64(n+1)*machEps*cond)
	if math.IsNaN(bound) || bound > maxUndershoot {
		return maxUndershoot
	}

	return bound
}

// clean flushes negatives down to -bound, renormalises, and rejects anything
// that cannot be a probability vector.
func clean(pi []float64, bound float64) error {
	var sum float64
	for i, v := range pi {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("pi[%d] = %v is not finite", i, v)
		}
		if v < 0 {
			if v < -bound {
				return fmt.Errorf("pi[%d] = %v is negative beyond rounding bound %v", i, v, bound)
			}
			pi[i] = 0
		}
		sum += pi[i]
	}
	if math.Abs(sum-1) > math.Max(sumTolerance, float64(len(pi))*bound) {
		return fmt.Errorf("probabilities sum to %v", sum)
	}
	for i := range pi {
		pi[i] /= sum
	}

	return nil
}

// Residual returns max_j |(π·Q)_j|, the fixed-point defect of π.
func (d Distribution) Residual(q [][]float64) (float64, error) {
	m, err := matrix.NewFromRows(q)
	if err != nil {
		return 0, err
	}
	r, err := matrix.VecMat(d.Pi, m)
	if err != nil {
		return 0, err
	}
	var worst float64
	for _, v := range r {
		worst = math.Max(worst, math.Abs(v))
	}

	return worst, nil
}

// Sum returns Σπ.
func (d Distribution) Sum() float64 {
	var s float64
	for _, v := range d.Pi {
		s += v
	}

	return s
}

// Rationals returns a fraction approximation of every π_i, bounded by the
// denominator configured with WithMaxDenominator.
func (d Distribution) Rationals() []Rational {
	maxDen := d.maxDen
	if maxDen < 1 {
		maxDen = DefaultMaxDenominator
	}
	out := make([]Rational, len(d.Pi))
	for i, v := range d.Pi {
		out[i] = Approximate(v, maxDen)
	}

	return out
}
