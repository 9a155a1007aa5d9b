// SPDX-License-Identifier: MIT

package validate

import "math"

const (
	msgMatrixValid = "intensity matrix is valid"
	msgVectorValid = "initial probability vector is valid"
)

// Result is the outcome of a table-level check. Err is nil when Valid is true,
// otherwise it is a *StructuralError or *ValueError whose text equals Message.
type Result struct {
	Valid   bool
	Message string
	Err     error
}

func ok(msg string) Result { return Result{Valid: true, Message: msg} }

func fail(err error) Result { return Result{Message: err.Error(), Err: err} }

// ValidateTableValues checks raw generator input more strictly than
// CheckIntensityMatrix, with a tolerance that scales with the row magnitude.
//
// Checks, in order (row-major, first failure wins):
//  1. the table is non-empty and square;
//  2. every cell is finite;
//  3. off-diagonal cells ≥ −Epsilon;
//  4. diagonal cells ≤ Epsilon;
//  5. |row sum| ≤ max(Epsilon, |off-diagonal sum|·RelativeTolerance);
//  6. |diag + off-diagonal sum| ≤ the same tolerance.
//
// Checks 2–4 run per cell while the row is scanned; 5–6 run once the row is complete.
func ValidateTableValues(q [][]float64) Result {
	if err := CheckSquare(q); err != nil {
		return fail(err)
	}
	n := len(q)
	var i, j int
	var v, rowSum, offDiag, tol, diag float64
	for i = 0; i < n; i++ {
		rowSum, offDiag = 0, 0
		for j = 0; j < n; j++ {
			v = q[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fail(valuef(NonFinite, i, j, v, "invalid value at row %d, column %d: %v", i, j, v))
			}
			if i != j {
				if v < -Epsilon {
					return fail(valuef(OffDiagonalNegative, i, j, v,
						"off-diagonal elements must be non-negative: q[%d][%d] = %v < 0", i, j, v))
				}
				offDiag += v
			} else if v > Epsilon {
				return fail(valuef(DiagonalPositive, i, j, v,
					"diagonal element must be non-positive: q[%d][%d] = %v > 0", i, j, v))
			}
			rowSum += v
		}

		tol = math.Max(Epsilon, math.Abs(offDiag)*RelativeTolerance)
		if math.Abs(rowSum) > tol {
			return fail(valuef(RowSumNonzero, i, -1, rowSum, "sum of row %d is not 0 (sum = %v)", i, rowSum))
		}
		diag = q[i][i]
		if math.Abs(diag+offDiag) > tol {
			return fail(valuef(DiagonalMismatch, i, i, diag,
				"diagonal element q[%d][%d] = %v does not equal the negated off-diagonal sum (%v)", i, i, diag, -offDiag))
		}
	}

	return ok(msgMatrixValid)
}

// ValidateInitialVector rejects non-finite entries (citing the index) and then
// checks |Σ − 1| ≤ Epsilon. Negative entries are left to IsProbabilityVector.
func ValidateInitialVector(p []float64) Result {
	if len(p) == 0 {
		return fail(structuralf(-1, "initial probability vector is empty"))
	}
	var sum float64
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fail(valuef(NonFinite, -1, i, v, "missing or non-finite value in initial probability vector (p%d)", i))
		}
		sum += v
	}
	if math.Abs(sum-1) > Epsilon {
		return fail(valuef(ProbabilitySum, -1, -1, sum, "initial probabilities must sum to 1 (sum = %v)", sum))
	}

	return ok(msgVectorValid)
}
