// SPDX-License-Identifier: MIT

package transient

import "fmt"

// Trajectory is the ordered sequence of samples t_0 = 0 < t_1 < … < t_steps = T.
type Trajectory struct {
	Samples []Sample `json:"samples"`
}

// Len returns the number of samples (steps + 1).
func (tr Trajectory) Len() int { return len(tr.Samples) }

// States returns the dimension n of each sample, or 0 for an empty trajectory.
func (tr Trajectory) States() int {
	if len(tr.Samples) == 0 {
		return 0
	}

	return len(tr.Samples[0].P)
}

// At returns sample k.
func (tr Trajectory) At(k int) (Sample, error) {
	if k < 0 || k >= len(tr.Samples) {
		return Sample{}, fmt.Errorf("transient: sample %d out of range [0,%d)", k, len(tr.Samples))
	}

	return tr.Samples[k], nil
}

// Times returns t_k for every sample.
func (tr Trajectory) Times() []float64 {
	out := make([]float64, len(tr.Samples))
	for k, s := range tr.Samples {
		out[k] = s.T
	}

	return out
}

// Series returns p_i(t_k) over all samples, the curve of state i.
func (tr Trajectory) Series(i int) ([]float64, error) {
	if i < 0 || i >= tr.States() {
		return nil, fmt.Errorf("transient: state %d out of range [0,%d)", i, tr.States())
	}
	out := make([]float64, len(tr.Samples))
	for k, s := range tr.Samples {
		out[k] = s.P[i]
	}

	return out, nil
}

// Final returns p(T), or nil for an empty trajectory.
func (tr Trajectory) Final() []float64 {
	if len(tr.Samples) == 0 {
		return nil
	}

	return tr.Samples[len(tr.Samples)-1].P
}
