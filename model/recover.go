// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ctmc/validate"
)

// document is the loosely typed wire form shared by every loader. Pointer
// fields distinguish "absent" from zero; numbers are float64 so that
// non-integral counts are reported instead of failing the parse.
type document struct {
	Version       *float64    `json:"version" yaml:"version" mapstructure:"version"`
	Size          *float64    `json:"size" yaml:"size" mapstructure:"size"`
	Matrix        [][]float64 `json:"matrix" yaml:"matrix" mapstructure:"matrix"`
	InitialVector []float64   `json:"initialVector" yaml:"initialVector" mapstructure:"initialVector"`
	TimeEnd       *float64    `json:"timeEnd" yaml:"timeEnd" mapstructure:"timeEnd"`
	Steps         *float64    `json:"steps" yaml:"steps" mapstructure:"steps"`
	Precision     *float64    `json:"precision" yaml:"precision" mapstructure:"precision"`
	Meta          *Meta       `json:"meta" yaml:"meta" mapstructure:"meta"`
}

// resolve turns a parsed document into a Model.
//
// Implementation:
//   - Stage 1: matrix and initialVector must be present (an empty list counts
//     as present).
//   - Stage 2: n = size if non-zero, else len(matrix) if non-zero, else
//     len(initialVector); n must be an integer in
//     [validate.MinStates, validate.MaxStates].
//   - Stage 3: keep the first n matrix rows, pad each row with zeros or cut it
//     to n, add zero rows up to n; pad or cut the vector to n.
//   - Stage 4: copy the scalar parameters, substituting defaults for absent ones.
func resolve(doc *document) (*Model, error) {
	if doc.Matrix == nil {
		return nil, fmt.Errorf("%w: matrix", ErrMissingField)
	}
	if doc.InitialVector == nil {
		return nil, fmt.Errorf("%w: initialVector", ErrMissingField)
	}

	var size float64
	switch {
	case doc.Size != nil && *doc.Size != 0 && !math.IsNaN(*doc.Size):
		size = *doc.Size
	case len(doc.Matrix) > 0:
		size = float64(len(doc.Matrix))
	default:
		size = float64(len(doc.InitialVector))
	}
	if size != math.Trunc(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if size < validate.MinStates || size > validate.MaxStates {
		return nil, fmt.Errorf("%w: %v is outside %d..%d states",
			ErrInvalidSize, size, validate.MinStates, validate.MaxStates)
	}
	n := int(size)

	m := &Model{
		Version:       Version,
		Size:          n,
		Matrix:        fitMatrix(doc.Matrix, n),
		InitialVector: fitVector(doc.InitialVector, n),
		TimeEnd:       DefaultTimeEnd,
		Steps:         DefaultSteps,
		Precision:     DefaultPrecision,
		Meta:          doc.Meta,
	}

	var err error
	if doc.Version != nil {
		if m.Version, err = toInt("version", *doc.Version); err != nil {
			return nil, err
		}
	}
	if doc.TimeEnd != nil {
		m.TimeEnd = *doc.TimeEnd
	}
	if doc.Steps != nil {
		if m.Steps, err = toInt("steps", *doc.Steps); err != nil {
			return nil, err
		}
	}
	if doc.Precision != nil {
		if m.Precision, err = toInt("precision", *doc.Precision); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// fitMatrix returns an n×n copy of rows, cutting or zero-padding both axes.
func fitMatrix(rows [][]float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		if i < len(rows) {
			copy(out[i], rows[i])
		}
	}

	return out
}

// fitVector returns a length-n copy of v, cut or zero-padded.
func fitVector(v []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, v)

	return out
}

// toInt accepts integral values in the int32 range.
func toInt(field string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer (got %v)", ErrInvalid, field, v)
	}

	return int(v), nil
}
