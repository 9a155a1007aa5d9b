// SPDX-License-Identifier: MIT

package stationary

import (
	"errors"
	"fmt"
)

// ErrSolverFailure is matched by every *SolverFailure.
var ErrSolverFailure = errors.New("stationary: solver failure")

// SolverFailure reports a numerical failure of the balance-equation solve.
// No distribution is returned alongside it.
type SolverFailure struct {
	// Stage names the step that failed ("pseudo-inverse", "solution").
	Stage string

	// Err is the underlying cause; may be nil when the result itself was rejected.
	Err error
}

func (e *SolverFailure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("stationary: solver failure at %s", e.Stage)
	}

	return fmt.Sprintf("stationary: solver failure at %s: %v", e.Stage, e.Err)
}

// Unwrap exposes both ErrSolverFailure and the cause to errors.Is/As.
func (e *SolverFailure) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSolverFailure}
	}

	return []error{ErrSolverFailure, e.Err}
}
