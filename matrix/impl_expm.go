// SPDX-License-Identifier: MIT

// Package matrix - dense matrix exponential.
//
// Purpose:
//   - exp(A) for a general square A via scaling-and-squaring with diagonal Padé
//     approximants (degrees 3, 5, 7, 9, 13), following Higham, "The Scaling and
//     Squaring Method for the Matrix Exponential Revisited" (SIAM J. Matrix Anal.
//     Appl. 26(4), 2005).
//   - Stiff generators (rates spanning orders of magnitude) are handled by the
//     norm-driven choice of degree and scaling power; no Taylor truncation.
//
// Determinism:
//   - Degree selection depends only on ‖A‖₁; all loops run in fixed order.

package matrix

import (
	"fmt"
	"math"
)

const opExpm = "Expm"

// padeTheta[m] is the largest ‖A‖₁ for which the degree-m approximant reaches
// unit roundoff in double precision.
var padeTheta = map[int]float64{
	3:  1.495585217958292e-2,
	5:  2.539398330063230e-1,
	7:  9.504178996162932e-1,
	9:  2.097847961257068e0,
	13: 5.371920351148152e0,
}

// padeOrders lists the low degrees tried before falling back to degree 13.
var padeOrders = [...]int{3, 5, 7, 9}

// padeCoeffs[m] are the numerator coefficients b_0..b_m of the [m/m] approximant.
var padeCoeffs = map[int][]float64{
	3: {120, 60, 12, 1},
	5: {30240, 15120, 3360, 420, 30, 1},
	7: {17297280, 8648640, 1995840, 277200, 25200, 1512, 56, 1},
	9: {17643225600, 8821612800, 2075673600, 302702400, 30270240,
		2162160, 110880, 3960, 90, 1},
	13: {64764752532480000, 32382376266240000, 7771770303897600,
		1187353796428800, 129060195264000, 10559470521600, 670442572800,
		33522128640, 1323241920, 40840800, 960960, 16380, 182, 1},
}

// Expm returns exp(m) for a square, finite matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare, ValidateFinite; compute ‖A‖₁.
//   - Stage 2: if ‖A‖₁ ≤ θ_m for m ∈ {3,5,7,9}, return r_m(A) directly.
//   - Stage 3: otherwise s = ⌈log₂(‖A‖₁/θ₁₃)⌉, evaluate r₁₃(A/2ˢ) and square s times.
//
// Behavior highlights:
//   - exp(0) is returned as the exact identity (r_3(0) = I with exact arithmetic).
//   - r_m(A) = q_m(A)⁻¹·p_m(A) is obtained with the pivoted LU solver, never by
//     forming an explicit inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (input), ErrSingular (denominator),
//     ErrExpmOverflow (result left the finite range while squaring).
//
// Complexity:
//   - Time O((m_eval + s)·n^3), Space O(n^2) per retained power.
func Expm(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	norm, err := Norm1(a)
	if err != nil {
		return nil, matrixErrorf(opExpm, err)
	}

	for _, order := range padeOrders {
		if norm <= padeTheta[order] {
			r, err := padeLow(a, order)
			if err != nil {
				return nil, matrixErrorf(opExpm, err)
			}

			return r, nil
		}
	}

	s := int(math.Max(0, math.Ceil(math.Log2(norm/padeTheta[13]))))
	scaled := a
	if s > 0 {
		sc, err := Scale(a, math.Ldexp(1, -s))
		if err != nil {
			return nil, matrixErrorf(opExpm, err)
		}
		scaled = sc.(*Dense)
	}
	r, err := pade13(scaled)
	if err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	for k := 0; k < s; k++ {
		sq, err := Mul(r, r)
		if err != nil {
			return nil, matrixErrorf(opExpm, err)
		}
		r = sq.(*Dense)
		if !r.isFinite() {
			return nil, matrixErrorf(opExpm, fmt.Errorf("squaring %d/%d: %w", k+1, s, ErrExpmOverflow))
		}
	}

	return r, nil
}

// padeLow evaluates r_m(A) for m ∈ {3,5,7,9} using even powers A², A⁴, ...
//
//	U = A·Σ_{k odd} b_k·A^{k−1},  V = Σ_{k even} b_k·A^k,  r_m = (V−U)⁻¹(V+U).
func padeLow(a *Dense, order int) (*Dense, error) {
	b := padeCoeffs[order]
	n := a.r

	// even powers: pows[0]=I, pows[1]=A², pows[2]=A⁴, ...
	id, err := NewIdentity(n)
	if err != nil {
		return nil, err
	}
	a2m, err := Mul(a, a)
	if err != nil {
		return nil, err
	}
	a2 := a2m.(*Dense)
	pows := []*Dense{id, a2}
	for len(pows) <= order/2 {
		next, err := Mul(pows[len(pows)-1], a2)
		if err != nil {
			return nil, err
		}
		pows = append(pows, next.(*Dense))
	}

	uInner := make([]float64, n*n)
	v := make([]float64, n*n)
	for k := order; k >= 0; k-- {
		p := pows[k/2]
		if k%2 == 1 {
			axpy(uInner, b[k], p.data)
		} else {
			axpy(v, b[k], p.data)
		}
	}

	return padeSolve(a, uInner, v)
}

// pade13 evaluates r_13(A) with the Paterson–Stockmeyer style split of Higham (2005).
func pade13(a *Dense) (*Dense, error) {
	b := padeCoeffs[13]
	n := a.r

	a2m, err := Mul(a, a)
	if err != nil {
		return nil, err
	}
	a2 := a2m.(*Dense)
	a4m, err := Mul(a2, a2)
	if err != nil {
		return nil, err
	}
	a4 := a4m.(*Dense)
	a6m, err := Mul(a4, a2)
	if err != nil {
		return nil, err
	}
	a6 := a6m.(*Dense)

	// U = A·[A6·(b13·A6 + b11·A4 + b9·A2) + b7·A6 + b5·A4 + b3·A2 + b1·I]
	w1 := make([]float64, n*n)
	axpy(w1, b[13], a6.data)
	axpy(w1, b[11], a4.data)
	axpy(w1, b[9], a2.data)
	w1d := &Dense{r: n, c: n, data: w1}
	t1, err := Mul(a6, w1d)
	if err != nil {
		return nil, err
	}
	uInner := t1.(*Dense).data
	axpy(uInner, b[7], a6.data)
	axpy(uInner, b[5], a4.data)
	axpy(uInner, b[3], a2.data)
	addDiag(uInner, n, b[1])

	// V = A6·(b12·A6 + b10·A4 + b8·A2) + b6·A6 + b4·A4 + b2·A2 + b0·I
	z1 := make([]float64, n*n)
	axpy(z1, b[12], a6.data)
	axpy(z1, b[10], a4.data)
	axpy(z1, b[8], a2.data)
	z1d := &Dense{r: n, c: n, data: z1}
	t2, err := Mul(a6, z1d)
	if err != nil {
		return nil, err
	}
	v := t2.(*Dense).data
	axpy(v, b[6], a6.data)
	axpy(v, b[4], a4.data)
	axpy(v, b[2], a2.data)
	addDiag(v, n, b[0])

	return padeSolve(a, uInner, v)
}

// padeSolve forms U = A·uInner and returns the solution R of (V−U)·R = (V+U).
func padeSolve(a *Dense, uInner, v []float64) (*Dense, error) {
	n := a.r
	um, err := Mul(a, &Dense{r: n, c: n, data: uInner})
	if err != nil {
		return nil, err
	}
	u := um.(*Dense).data

	num := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}
	den := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}
	for k := range v {
		num.data[k] = v[k] + u[k]
		den.data[k] = v[k] - u[k]
	}

	return Solve(den, num)
}

// axpy accumulates dst += alpha·src over flat buffers of equal length.
func axpy(dst []float64, alpha float64, src []float64) {
	if alpha == 0 {
		return
	}
	for k := range dst {
		dst[k] += alpha * src[k]
	}
}

// addDiag adds alpha to the diagonal of an n×n flat buffer.
func addDiag(dst []float64, n int, alpha float64) {
	for i := 0; i < n; i++ {
		dst[i*n+i] += alpha
	}
}
