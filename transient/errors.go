// SPDX-License-Identifier: MIT

package transient

import (
	"errors"
	"fmt"
)

// ErrDegenerate is returned when a sample loses all probability mass after
// clamping (every component ≤ 0).
var ErrDegenerate = errors.New("transient: probability mass vanished")

// SampleError locates a failure at sample k (time T).
type SampleError struct {
	K   int
	T   float64
	Err error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("transient: sample %d (t=%g): %v", e.K, e.T, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }
