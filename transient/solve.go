// SPDX-License-Identifier: MIT

package transient

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ctmc/matrix"
	"github.com/katalvlaran/ctmc/validate"
)

// Solve returns p(t_k) = p0·exp(Q·t_k) for t_k = k·T/steps, k = 0..steps.
//
// Implementation:
//   - Stage 1: preconditions, all before any computation: steps in
//     [validate.MinSteps, validate.MaxSteps], T finite and > 0, Q square with
//     len(p0) rows, p0 a probability vector, Q accepted by
//     validate.ValidateTableValues.
//   - Stage 2: for each k, check ctx, E = matrix.Expm(Q·t_k), p = p0·E.
//   - Stage 3: clamp negative components to 0 and divide by the clamped sum.
//
// Behavior highlights:
//   - Sample 0 is p0 (exp(0) = I) up to the final renormalization.
//   - Samples are independent; WithWorkers evaluates them concurrently and the
//     result is still ordered by k.
//
// Errors:
//   - *validate.StructuralError, *validate.ValueError for rejected input.
//   - ctx.Err(), usually wrapped in *SampleError, when cancelled between samples.
//   - *SampleError wrapping matrix errors (e.g. matrix.ErrExpmOverflow) or
//     ErrDegenerate.
//
// Complexity:
//   - Time O(steps·n³·log‖Q·T‖), Space O(steps·n + workers·n²).
func Solve(ctx context.Context, p0 []float64, q [][]float64, T float64, steps int, opts ...Option) (Trajectory, error) {
	if err := validate.ValidateSteps(steps); err != nil {
		return Trajectory{}, err
	}
	if err := validate.ValidateTimeEnd(T); err != nil {
		return Trajectory{}, err
	}
	if err := validate.ValidateDimensions(q, p0); err != nil {
		return Trajectory{}, err
	}
	if err := validate.CheckProbabilityVector(p0); err != nil {
		return Trajectory{}, err
	}
	if res := validate.ValidateTableValues(q); !res.Valid {
		return Trajectory{}, res.Err
	}
	o := gatherOptions(opts...)

	gen, err := matrix.NewFromRows(q)
	if err != nil {
		return Trajectory{}, err
	}
	s := &sampler{p0: p0, q: gen, dt: T / float64(steps), observer: o.observer}
	samples := make([]Sample, steps+1)

	if o.workers == 1 {
		for k := range samples {
			if samples[k], err = s.sample(ctx, k); err != nil {
				return Trajectory{}, err
			}
		}

		return Trajectory{Samples: samples}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for k := range samples {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			smp, err := s.sample(gctx, k)
			if err != nil {
				return err
			}
			samples[k] = smp

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Trajectory{}, err
	}
	if err = ctx.Err(); err != nil {
		return Trajectory{}, err
	}

	return Trajectory{Samples: samples}, nil
}

// sampler holds the read-only inputs shared by every sample evaluation.
type sampler struct {
	p0       []float64
	q        *matrix.Dense
	dt       float64
	observer Observer
}

// sample evaluates t_k = k·dt. Each call allocates its own scratch.
func (s *sampler) sample(ctx context.Context, k int) (Sample, error) {
	t := float64(k) * s.dt
	if err := ctx.Err(); err != nil {
		return Sample{}, &SampleError{K: k, T: t, Err: err}
	}

	qt, err := matrix.Scale(s.q, t)
	if err != nil {
		return Sample{}, &SampleError{K: k, T: t, Err: err}
	}
	e, err := matrix.Expm(qt)
	if err != nil {
		return Sample{}, &SampleError{K: k, T: t, Err: err}
	}
	p, err := matrix.VecMat(s.p0, e)
	if err != nil {
		return Sample{}, &SampleError{K: k, T: t, Err: err}
	}
	if err = normalize(p); err != nil {
		return Sample{}, &SampleError{K: k, T: t, Err: err}
	}

	smp := Sample{K: k, T: t, P: p}
	if s.observer != nil {
		s.observer(smp)
	}

	return smp, nil
}

// normalize clamps negatives to zero and rescales p to unit sum, in place.
func normalize(p []float64) error {
	var sum float64
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrix.ErrNaNInf
		}
		if v < 0 {
			p[i] = 0
			continue
		}
		sum += v
	}
	if sum <= 0 {
		return ErrDegenerate
	}
	for i := range p {
		p[i] /= sum
	}

	return nil
}
