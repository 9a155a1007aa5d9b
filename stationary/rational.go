// SPDX-License-Identifier: MIT

package stationary

import (
	"fmt"
	"math"
)

// Rational is a reduced fraction Num/Den with Den ≥ 1.
type Rational struct {
	Num int64 `json:"num"`
	Den int64 `json:"den"`
}

// Float returns Num/Den.
func (r Rational) Float() float64 { return float64(r.Num) / float64(r.Den) }

// String formats the fraction as "num/den".
func (r Rational) String() string { return fmt.Sprintf("%d/%d", r.Num, r.Den) }

// convergentLimit bounds the continued-fraction expansion depth.
const convergentLimit = 64

// Approximate returns the best rational approximation of x with denominator at
// most maxDen (maxDen < 1 is treated as 1).
//
// Implementation:
//   - Expand |x| as a continued fraction, keeping convergents h/k until the next
//     denominator would exceed maxDen or the convergent is exact.
//   - When truncated, compare the last convergent with the best semiconvergent
//     and keep the closer one.
//
// Non-finite x yields 0/1; |x| ≥ 2⁵³ yields the rounded integer over 1.
func Approximate(x float64, maxDen int64) Rational {
	if maxDen < 1 {
		maxDen = 1
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rational{Num: 0, Den: 1}
	}
	if math.Abs(x) >= 1<<53 {
		return Rational{Num: int64(math.Max(math.Min(x, 1<<62), -(1 << 62))), Den: 1}
	}

	sign := int64(1)
	if x < 0 {
		sign, x = -1, -x
	}

	// h/k are the last two convergents (h1/k1 newest).
	var h2, k2, h1, k1 int64 = 0, 1, 1, 0
	f := x
	truncated := false
	for it := 0; it < convergentLimit; it++ {
		a := math.Floor(f)
		if a > float64(maxDen)*4 && k1 > 0 {
			truncated = true
			break
		}
		ai := int64(a)
		k := ai*k1 + k2
		if k > maxDen {
			truncated = true
			break
		}
		h := ai*h1 + h2
		h2, k2, h1, k1 = h1, k1, h, k

		frac := f - a
		if frac == 0 || math.Abs(x-float64(h1)/float64(k1)) <= 1e-15*math.Max(1, x) {
			break
		}
		f = 1 / frac
	}

	if truncated && k1 > 0 {
		// best semiconvergent (h2 + m·h1)/(k2 + m·k1) with the largest admissible m
		m := (maxDen - k2) / k1
		hs, ks := h2+m*h1, k2+m*k1
		if ks > 0 && math.Abs(x-float64(hs)/float64(ks)) < math.Abs(x-float64(h1)/float64(k1)) {
			h1, k1 = hs, ks
		}
	}

	return Rational{Num: sign * h1, Den: k1}
}
