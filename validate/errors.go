// SPDX-License-Identifier: MIT
// Package validate: error taxonomy.
//
// Two typed errors cover every validation failure:
//   - *StructuralError: empty input, ragged rows, non-square matrix, dimension mismatch.
//   - *ValueError: non-finite cells, sign violations, row-sum violations,
//     probability-sum violations, out-of-range scalar parameters.
//
// Both match their sentinel through errors.Is and expose diagnostics through errors.As.

package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrStructural is matched by every *StructuralError.
	ErrStructural = errors.New("validate: structural error")

	// ErrValue is matched by every *ValueError.
	ErrValue = errors.New("validate: value error")
)

// Kind classifies a value violation.
type Kind int

const (
	// NonFinite marks a NaN or ±Inf cell.
	NonFinite Kind = iota + 1
	// DiagonalPositive marks Q[i][i] > 0.
	DiagonalPositive
	// OffDiagonalNegative marks Q[i][j] < 0 for i != j.
	OffDiagonalNegative
	// RowSumNonzero marks a generator row that does not sum to zero.
	RowSumNonzero
	// DiagonalMismatch marks Q[i][i] != -Σ_{j≠i} Q[i][j].
	DiagonalMismatch
	// NegativeProbability marks p[i] < 0.
	NegativeProbability
	// ProbabilitySum marks a probability vector whose sum is not 1.
	ProbabilitySum
	// OutOfRange marks a scalar parameter outside its admissible range.
	OutOfRange
)

var kindNames = map[Kind]string{
	NonFinite:           "NonFinite",
	DiagonalPositive:    "DiagonalPositive",
	OffDiagonalNegative: "OffDiagonalNegative",
	RowSumNonzero:       "RowSumNonzero",
	DiagonalMismatch:    "DiagonalMismatch",
	NegativeProbability: "NegativeProbability",
	ProbabilitySum:      "ProbabilitySum",
	OutOfRange:          "OutOfRange",
}

// String returns the class name used in diagnostics and metric labels.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// StructuralError reports a shape problem. Row is -1 when the problem is not
// tied to a single row.
type StructuralError struct {
	Row int
	Msg string
}

func (e *StructuralError) Error() string { return "validate: " + e.Msg }

// Unwrap exposes ErrStructural to errors.Is.
func (e *StructuralError) Unwrap() error { return ErrStructural }

// ValueError reports an offending value together with its position.
// Row and Col are -1 when not applicable (row sums use Col = -1, scalars use both).
type ValueError struct {
	Kind  Kind
	Row   int
	Col   int
	Value float64
	Msg   string
}

func (e *ValueError) Error() string { return "validate: " + e.Msg }

// Unwrap exposes ErrValue to errors.Is.
func (e *ValueError) Unwrap() error { return ErrValue }

func structuralf(row int, format string, args ...any) *StructuralError {
	return &StructuralError{Row: row, Msg: fmt.Sprintf(format, args...)}
}

func valuef(kind Kind, row, col int, v float64, format string, args ...any) *ValueError {
	return &ValueError{Kind: kind, Row: row, Col: col, Value: v, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the violation class of err, or 0 when err carries none.
// Structural errors report 0.
func KindOf(err error) Kind {
	var ve *ValueError
	if errors.As(err, &ve) {
		return ve.Kind
	}

	return 0
}
