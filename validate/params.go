// SPDX-License-Identifier: MIT

package validate

import "math"

// Admissible ranges for model parameters.
const (
	MinStates = 2
	MaxStates = 100
	MinSteps  = 1
	MaxSteps  = 999
)

// ValidateSize checks MinStates ≤ n ≤ MaxStates.
func ValidateSize(n int) error {
	if n < MinStates || n > MaxStates {
		return valuef(OutOfRange, -1, -1, float64(n),
			"matrix size must be an integer from %d to %d (got %d)", MinStates, MaxStates, n)
	}

	return nil
}

// ValidateSteps checks MinSteps ≤ steps ≤ MaxSteps.
func ValidateSteps(steps int) error {
	if steps < MinSteps || steps > MaxSteps {
		return valuef(OutOfRange, -1, -1, float64(steps),
			"number of steps must be an integer from %d to %d (got %d)", MinSteps, MaxSteps, steps)
	}

	return nil
}

// ValidateTimeEnd checks that the horizon is finite and strictly positive.
func ValidateTimeEnd(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return valuef(OutOfRange, -1, -1, t, "end time must be a positive finite number (got %v)", t)
	}

	return nil
}

// ValidateCell checks a single generator entry for finiteness.
func ValidateCell(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return valuef(NonFinite, -1, -1, v, "only finite numbers are allowed (got %v)", v)
	}

	return nil
}

// ValidateProbabilityCell checks a single probability entry: finite and in [0, 1].
func ValidateProbabilityCell(v float64) error {
	if err := ValidateCell(v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return valuef(OutOfRange, -1, -1, v, "probability must be in [0, 1] (got %v)", v)
	}

	return nil
}
