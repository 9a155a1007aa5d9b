// SPDX-License-Identifier: MIT

package validate

import "math"

const (
	// Epsilon is the absolute tolerance shared by every check in this package.
	Epsilon = 1e-9

	// RelativeTolerance scales the row-sum tolerance of ValidateTableValues by the
	// magnitude of the row's off-diagonal sum.
	RelativeTolerance = 1e-8
)

// IsProbabilityVector reports whether every element of p is non-negative and
// |Σp − 1| < Epsilon.
func IsProbabilityVector(p []float64) bool {
	return CheckProbabilityVector(p) == nil
}

// CheckProbabilityVector is IsProbabilityVector with a diagnostic.
//
// Errors:
//   - *StructuralError for an empty vector.
//   - *ValueError{NonFinite|NegativeProbability} citing the index (Row = -1, Col = i).
//   - *ValueError{ProbabilitySum} citing the measured sum.
func CheckProbabilityVector(p []float64) error {
	if len(p) == 0 {
		return structuralf(-1, "probability vector is empty")
	}
	var sum float64
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return valuef(NonFinite, -1, i, v, "p[%d] = %v is not finite", i, v)
		}
		if v < 0 {
			return valuef(NegativeProbability, -1, i, v, "p[%d] = %v < 0", i, v)
		}
		sum += v
	}
	if !(math.Abs(sum-1) < Epsilon) {
		return valuef(ProbabilitySum, -1, -1, sum, "probabilities must sum to 1 (sum = %v)", sum)
	}

	return nil
}

// IsIntensityMatrix reports whether q is a CTMC generator.
func IsIntensityMatrix(q [][]float64) bool {
	return CheckIntensityMatrix(q) == nil
}

// CheckIntensityMatrix scans q row-major and returns the first violation.
//
// Implementation:
//   - Stage 1: q must be non-empty and square.
//   - Stage 2: for each row i, for each column j ascending: non-finite cell,
//     Q[i][i] > 0 (DiagonalPositive), Q[i][j] < 0 for i≠j (OffDiagonalNegative).
//   - Stage 3: after the row, |Σ_j Q[i][j]| > Epsilon is RowSumNonzero (Col = -1).
//
// Errors:
//   - *StructuralError, *ValueError (see Kind).
//
// Complexity:
//   - Time O(n²), Space O(1).
func CheckIntensityMatrix(q [][]float64) error {
	if err := CheckSquare(q); err != nil {
		return err
	}
	n := len(q)
	var i, j int
	var v, rowSum float64
	for i = 0; i < n; i++ {
		rowSum = 0
		for j = 0; j < n; j++ {
			v = q[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return valuef(NonFinite, i, j, v, "Q[%d][%d] = %v is not finite", i, j, v)
			}
			if i == j && v > 0 {
				return valuef(DiagonalPositive, i, j, v, "diagonal element Q[%d][%d] = %v > 0", i, j, v)
			}
			if i != j && v < 0 {
				return valuef(OffDiagonalNegative, i, j, v, "off-diagonal element Q[%d][%d] = %v < 0", i, j, v)
			}
			rowSum += v
		}
		if math.Abs(rowSum) > Epsilon {
			return valuef(RowSumNonzero, i, -1, rowSum, "sum of row %d is not 0 (sum = %v)", i, rowSum)
		}
	}

	return nil
}

// ValidateDimensions checks that q is square and matches the length of p0.
func ValidateDimensions(q [][]float64, p0 []float64) error {
	if err := CheckSquare(q); err != nil {
		return err
	}
	if len(p0) != len(q) {
		return structuralf(-1, "dimension mismatch: Q is %dx%d, p0 has %d elements", len(q), len(q), len(p0))
	}

	return nil
}

// CheckSquare reports an empty or non-square table, citing the first bad row.
func CheckSquare(q [][]float64) error {
	n := len(q)
	if n == 0 {
		return structuralf(-1, "matrix is empty")
	}
	for i := 0; i < n; i++ {
		if len(q[i]) != n {
			return structuralf(i, "matrix is not square: row %d has length %d", i, len(q[i]))
		}
	}

	return nil
}

// CheckFinite reports the first non-finite cell of q in row-major order.
// Shape is not checked; pair it with CheckSquare.
func CheckFinite(q [][]float64) error {
	for i := range q {
		for j, v := range q[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return valuef(NonFinite, i, j, v, "Q[%d][%d] = %v is not finite", i, j, v)
			}
		}
	}

	return nil
}
