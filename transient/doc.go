// Package transient computes the transient distribution p(t) = p(0)·exp(Q·t)
// of a continuous-time Markov chain on an evenly spaced time grid.
//
// Solve checks every precondition (step count, horizon, dimensions, p(0) and
// the generator) before the first matrix exponential is evaluated. Each sample
// point t_k = k·T/steps is computed independently from exp(Q·t_k) with the Padé
// scaling-and-squaring routine of package matrix, clamped at zero and
// renormalized, so every sample is a probability vector.
//
// The context is checked at every sample boundary. WithWorkers evaluates sample
// points concurrently; the returned Trajectory is always in increasing time order.
//
// Example:
//
//	tr, err := transient.Solve(ctx, []float64{1, 0}, [][]float64{{-1, 1}, {1, -1}}, 10, 100)
//	if err != nil {
//		return err
//	}
//	fmt.Println(tr.Final()) // ≈ [0.5 0.5]
package transient
