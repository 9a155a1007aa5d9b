// SPDX-License-Identifier: MIT

package stationary

import "github.com/katalvlaran/ctmc/validate"

// Equation is one linear equation Σ_j Coeffs[j]·p_j = RHS.
type Equation struct {
	Coeffs []float64 `json:"coeffs"`
	RHS    float64   `json:"rhs"`
}

// BalanceSystem returns the Kolmogorov balance equations of q followed by the
// normalization equation: for each state i, Σ_j Q[j][i]·p_j = 0, then Σ_j p_j = 1.
// These are the rows of [Qᵀ; 1ᵀ]·p = b that Solve works on.
func BalanceSystem(q [][]float64) ([]Equation, error) {
	if err := validate.CheckSquare(q); err != nil {
		return nil, err
	}
	n := len(q)
	out := make([]Equation, 0, n+1)
	for i := 0; i < n; i++ {
		coeffs := make([]float64, n)
		for j := 0; j < n; j++ {
			coeffs[j] = q[j][i]
		}
		out = append(out, Equation{Coeffs: coeffs})
	}
	ones := make([]float64, n)
	for j := range ones {
		ones[j] = 1
	}

	return append(out, Equation{Coeffs: ones, RHS: 1}), nil
}
