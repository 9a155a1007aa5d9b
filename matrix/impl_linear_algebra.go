// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// scaling, matrix and vector products, transpose, induced norms, and a
// partially pivoted LU with a linear solver.
// All functions perform strict fail-fast validation and return wrapped sentinels.
//
// Notes:
//   - *Dense operands take a flat-slice fast path; other implementations fall
//     back to At/Set with identical loop orders, so results are bit-identical.
//   - Inputs are never mutated; every kernel allocates its result.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
	opNorm      = "Norm"
	opLU        = "LUPivot"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy built
// through At. Kernels that need random access to a scratch buffer call this once.
// Complexity: O(r*c) for non-Dense inputs, O(1) otherwise.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Dense fast path in i→k→j order (row-major friendly, skips zero a[i,k]);
//     generic fallback in i→j→k order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseWithPolicy(aRows, bCols, false)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			res.validateNaNInf = DefaultValidateNaNInf

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m. alpha must be finite.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range src.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// MatVec computes y = m·x (column vector on the right).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var i, j, base int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				y[i] += d.data[base+j] * x[j]
			}
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMat computes the row-vector product y = x·m, i.e. y[j] = Σ_i x[i]·m[i,j].
// This is the natural product for probability row vectors (p·P, π·Q).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Rows).
// Complexity: O(r*c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, rows); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}

	y := make([]float64, cols)
	var i, j, base int
	var xi float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			xi = x[i]
			if xi == 0 {
				continue
			}
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += xi * d.data[base+j]
			}
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		xi = x[i]
		if xi == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opVecMat, err)
			}
			y[j] += xi * mv
		}
	}

	return y, nil
}

// Norm1 returns the induced 1-norm: max_j Σ_i |m[i,j]| (max absolute column sum).
// Complexity: O(r*c).
func Norm1(m Matrix) (float64, error) {
	d, err := denseOperand(m, opNorm)
	if err != nil {
		return 0, err
	}
	best := NormZero
	var i, j int
	var s float64
	for j = 0; j < d.c; j++ {
		s = NormZero
		for i = 0; i < d.r; i++ {
			s += math.Abs(d.data[i*d.c+j])
		}
		if s > best {
			best = s
		}
	}

	return best, nil
}

// NormInf returns the induced ∞-norm: max_i Σ_j |m[i,j]| (max absolute row sum).
// Complexity: O(r*c).
func NormInf(m Matrix) (float64, error) {
	d, err := denseOperand(m, opNorm)
	if err != nil {
		return 0, err
	}
	best := NormZero
	var i, j int
	var s float64
	for i = 0; i < d.r; i++ {
		s = NormZero
		for j = 0; j < d.c; j++ {
			s += math.Abs(d.data[i*d.c+j])
		}
		if s > best {
			best = s
		}
	}

	return best, nil
}

// denseOperand validates m and returns a *Dense view of it (no copy for *Dense).
func denseOperand(m Matrix, tag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return d, nil
}

// LUFactors holds a partially pivoted factorization P·A = L·U packed into a
// single buffer (unit diagonal of L implied), plus the row permutation.
type LUFactors struct {
	n    int
	lu   []float64 // packed L (strict lower) and U (upper), row-major n×n
	perm []int     // perm[i] = original row placed at position i
}

// LUPivot computes P·A = L·U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy into a packed buffer.
//   - Stage 2: For k=0..n-1 pick the row with max |a[i,k]| (i ≥ k, first max wins),
//     swap, eliminate below the pivot.
//
// Behavior highlights:
//   - Deterministic pivot choice (strictly greater replaces, ties keep the lower row).
//   - A pivot with |u[k,k]| ≤ tiny·‖A‖∞ is reported as ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUPivot(m Matrix) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := src.r
	f := &LUFactors{n: n, lu: make([]float64, n*n), perm: make([]int, n)}
	copy(f.lu, src.data)
	for i := 0; i < n; i++ {
		f.perm[i] = i
	}

	scale, _ := NormInf(src)
	tiny := scale * 1e-15 // relative singularity threshold
	if tiny == 0 {
		tiny = math.SmallestNonzeroFloat64
	}

	var i, j, k, p int
	var maxAbs, v, pivot, factor float64
	a := f.lu
	for k = 0; k < n; k++ {
		p, maxAbs = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs <= tiny {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
		}
		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = a[i*n+k] / pivot
			a[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= factor * a[k*n+j]
			}
		}
	}

	return f, nil
}

// SolveVec solves A·x = b for one right-hand side using the stored factors.
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: O(n^2).
func (f *LUFactors) SolveVec(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.n
	x := make([]float64, n)
	var i, k int
	var sum float64
	// Forward substitution on the permuted RHS: L·y = P·b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	return x, nil
}

// Solve returns X with A·X = B for square A (pivoted LU, column by column).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (B.Rows != n), ErrSingular.
//
// Complexity:
//   - Time O(n^3 + n^2·c), Space O(n^2 + n·c).
func Solve(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LUPivot(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.Rows() != f.n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	rhs, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	out, err := newDenseWithPolicy(f.n, rhs.c, false)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	col := make([]float64, f.n)
	var i, j int
	var x []float64
	for j = 0; j < rhs.c; j++ {
		for i = 0; i < f.n; i++ {
			col[i] = rhs.data[i*rhs.c+j]
		}
		if x, err = f.SolveVec(col); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		for i = 0; i < f.n; i++ {
			out.data[i*rhs.c+j] = x[i]
		}
	}
	if !out.isFinite() {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	out.validateNaNInf = DefaultValidateNaNInf

	return out, nil
}
