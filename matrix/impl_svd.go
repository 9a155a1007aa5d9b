// SPDX-License-Identifier: MIT

// Package matrix - singular value decomposition and Moore–Penrose pseudo-inverse.
//
// Purpose:
//   - SVD(A) = U·diag(S)·Vᵀ via one-sided (Hestenes) Jacobi rotations on columns.
//   - PseudoInverse(A) = V·diag(S⁺)·Uᵀ with a relative singular-value cut-off.
//
// Scope:
//   - Rectangular and rank-deficient inputs are handled directly (the stationary
//     system [Qᵀ;1ᵀ] is (n+1)×n and Qᵀ alone is singular).
//
// Determinism:
//   - Pairs (p,q) are visited in fixed lexicographic order within each sweep.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	opSVD   = "SVD"
	opPinv  = "PseudoInverse"
	machEps = 2.220446049250313e-16
	svdTolK = 1e-15 // floor of the orthogonality target |⟨a_p,a_q⟩| ≤ tol·‖a_p‖·‖a_q‖
)

// SVDFactors holds a thin SVD: U is r×k, S has k entries in non-increasing
// order, V is c×k, with k = min(r,c).
type SVDFactors struct {
	U *Dense
	S []float64
	V *Dense
}

// Rank returns the number of singular values above rcond·S[0].
func (f *SVDFactors) Rank(rcond float64) int {
	if len(f.S) == 0 || f.S[0] == 0 {
		return 0
	}
	cut := rcond * f.S[0]
	k := 0
	for _, s := range f.S {
		if s > cut {
			k++
		}
	}

	return k
}

// SVD computes the thin singular value decomposition of m.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateFinite; transpose when Rows < Cols so the
//     working matrix is tall.
//   - Stage 2: sweep column pairs, rotating each pair to orthogonality, and
//     accumulate the rotations in V; stop after a sweep with no rotation.
//   - Stage 3: σ_j = ‖a_j‖₂, u_j = a_j/σ_j; sort by σ descending.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf; ErrSVDFailed when maxSweeps is exhausted.
//
// Complexity:
//   - Time O(sweeps·r·c²), Space O(r·c + c²).
func SVD(m Matrix, opts ...Option) (*SVDFactors, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	o := gatherOptions(opts...)

	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	transposed := a.r < a.c
	if transposed {
		at, err := Transpose(a)
		if err != nil {
			return nil, matrixErrorf(opSVD, err)
		}
		a = at.(*Dense)
	} else {
		a = a.Clone().(*Dense)
	}

	u, s, v, err := jacobiSVD(a, o.maxSweeps)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	if transposed {
		u, v = v, u
	}

	return &SVDFactors{U: u, S: s, V: v}, nil
}

// jacobiSVD runs one-sided Jacobi on a tall working copy w (rows ≥ cols), in place.
func jacobiSVD(w *Dense, maxSweeps int) (*Dense, []float64, *Dense, error) {
	r, c := w.r, w.c
	v, err := NewIdentity(c)
	if err != nil {
		return nil, nil, nil, err
	}

	// columns with norm ≤ svdTolK·‖W‖_F are numerically zero and never rotated
	var fro2 float64
	for _, x := range w.data {
		fro2 += x * x
	}
	negligible := fro2 * svdTolK * svdTolK
	tol := math.Max(svdTolK, float64(r)*machEps)

	var (
		sweep, p, q, i     int
		alpha, beta, gamma float64
		zeta, t, cs, sn    float64
		wp, wq, vp, vq     float64
		rotated, converged bool
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < c-1; p++ {
			for q = p + 1; q < c; q++ {
				alpha, beta, gamma = 0, 0, 0
				for i = 0; i < r; i++ {
					wp = w.data[i*c+p]
					wq = w.data[i*c+q]
					alpha += wp * wp
					beta += wq * wq
					gamma += wp * wq
				}
				if alpha <= negligible || beta <= negligible || gamma == 0 ||
					math.Abs(gamma) <= tol*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true

				// rotation angle that zeroes the (p,q) entry of WᵀW
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1, zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				cs = 1 / math.Sqrt(1+t*t)
				sn = cs * t

				for i = 0; i < r; i++ {
					wp = w.data[i*c+p]
					wq = w.data[i*c+q]
					w.data[i*c+p] = cs*wp - sn*wq
					w.data[i*c+q] = sn*wp + cs*wq
				}
				for i = 0; i < c; i++ {
					vp = v.data[i*c+p]
					vq = v.data[i*c+q]
					v.data[i*c+p] = cs*vp - sn*vq
					v.data[i*c+q] = sn*vp + cs*vq
				}
			}
		}
		if !rotated {
			converged = true
			break
		}
	}
	if !converged {
		return nil, nil, nil, fmt.Errorf("no convergence after %d sweeps: %w", maxSweeps, ErrSVDFailed)
	}

	// column norms are the singular values
	sigma := make([]float64, c)
	for j := 0; j < c; j++ {
		var sum float64
		for i = 0; i < r; i++ {
			sum += w.data[i*c+j] * w.data[i*c+j]
		}
		sigma[j] = math.Sqrt(sum)
	}

	order := make([]int, c)
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(x, y int) bool { return sigma[order[x]] > sigma[order[y]] })

	u, err := NewDense(r, c)
	if err != nil {
		return nil, nil, nil, err
	}
	vs, err := NewDense(c, c)
	if err != nil {
		return nil, nil, nil, err
	}
	s := make([]float64, c)
	for k, j := range order {
		s[k] = sigma[j]
		for i = 0; i < r; i++ {
			if sigma[j] > 0 {
				u.data[i*c+k] = w.data[i*c+j] / sigma[j]
			}
		}
		for i = 0; i < c; i++ {
			vs.data[i*c+k] = v.data[i*c+j]
		}
	}

	return u, s, vs, nil
}

// Cond returns σ_max/σ_k, the condition number of m restricted to its
// numerical range (σ_k is the smallest singular value above rcond·σ_max).
// A zero matrix reports +Inf.
func (f *SVDFactors) Cond(rcond float64) float64 {
	k := f.Rank(rcond)
	if k == 0 {
		return math.Inf(1)
	}

	return f.S[0] / f.S[k-1]
}

// PseudoInverse returns V·diag(S⁺)·Uᵀ, treating σ ≤ rcond·σ_max as zero.
// Errors: ErrSVDFailed when the result is not finite.
func (f *SVDFactors) PseudoInverse(rcond float64) (*Dense, error) {
	rows, cols, kk := f.U.r, f.V.r, len(f.S)
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, err
	}
	k := f.Rank(rcond)

	// A⁺[i][j] = Σ_l V[i][l]·(1/σ_l)·U[j][l]
	var i, j, l int
	var acc float64
	for i = 0; i < cols; i++ {
		for j = 0; j < rows; j++ {
			acc = 0
			for l = 0; l < k; l++ {
				acc += f.V.data[i*kk+l] * f.U.data[j*kk+l] / f.S[l]
			}
			out.data[i*rows+j] = acc
		}
	}
	if !out.isFinite() {
		return nil, ErrSVDFailed
	}

	return out, nil
}

// PseudoInverse returns the Moore–Penrose pseudo-inverse A⁺ (Cols×Rows).
//
// Behavior highlights:
//   - Singular values σ ≤ rcond·σ_max are treated as zero (see WithRCond).
//   - The all-zero matrix maps to the all-zero transpose shape.
//   - For a consistent system A·x = b, A⁺·b is the minimum-norm solution.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrSVDFailed (wrapped with the op tag).
//
// Complexity:
//   - Time O(SVD) + O(r·c·k).
func PseudoInverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := SVD(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	out, err := f.PseudoInverse(gatherOptions(opts...).rcond)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	return out, nil
}
