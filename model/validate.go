// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/katalvlaran/ctmc/validate"
)

// structValidator caches struct metadata; it is safe for concurrent use.
var structValidator = validator.New()

// Validate checks the parameter ranges and the shapes of m.
//
// Implementation:
//   - Stage 1: struct tags (size 2..100, steps 1..999, timeEnd > 0,
//     precision 0..15, matrix and initialVector present); the first failing
//     field is reported through the matching check of package validate.
//   - Stage 2: timeEnd finite; len(matrix) = size, every row of length size,
//     len(initialVector) = size.
//
// Errors:
//   - *validate.ValueError (Kind OutOfRange) for parameter ranges.
//   - *validate.StructuralError for shape mismatches.
//   - ErrInvalid for anything else.
func (m *Model) Validate() error {
	if err := structValidator.Struct(m); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			return m.fieldError(fields[0])
		}

		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := validate.ValidateTimeEnd(m.TimeEnd); err != nil {
		return err
	}
	if err := validate.CheckSquare(m.Matrix); err != nil {
		return err
	}
	if len(m.Matrix) != m.Size {
		return &validate.StructuralError{Row: -1,
			Msg: fmt.Sprintf("matrix has %d rows, size is %d", len(m.Matrix), m.Size)}
	}

	return validate.ValidateDimensions(m.Matrix, m.InitialVector)
}

// fieldError maps a failed struct tag to the diagnostic of package validate.
func (m *Model) fieldError(fe validator.FieldError) error {
	var err error
	switch fe.Field() {
	case "Size":
		err = validate.ValidateSize(m.Size)
	case "Steps":
		err = validate.ValidateSteps(m.Steps)
	case "TimeEnd":
		err = validate.ValidateTimeEnd(m.TimeEnd)
	case "Precision":
		err = &validate.ValueError{Kind: validate.OutOfRange, Row: -1, Col: -1, Value: float64(m.Precision),
			Msg: fmt.Sprintf("precision must be an integer from 0 to %d (got %d)", MaxPrecision, m.Precision)}
	}
	if err != nil {
		return err
	}

	return fmt.Errorf("%w: field %s failed on %q", ErrInvalid, fe.Field(), fe.Tag())
}
