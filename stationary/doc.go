// Package stationary solves the Kolmogorov balance equations of a CTMC.
//
// Solve stacks Qᵀ over a row of ones and applies the SVD pseudo-inverse from
// package matrix to b = (0,…,0,1). The stacked system is consistent for every
// generator, so the least-squares solution is exact up to rounding and the
// pseudo-inverse picks the minimum-norm one when several closed classes exist.
//
// Failures of the numerical step surface as *SolverFailure; a distribution is
// never returned together with an error.
//
// BalanceSystem exposes the same equations for presentation, and
// Distribution.Rationals gives fraction approximations such as 1/2 or 3/7.
package stationary
