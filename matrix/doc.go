// Package matrix provides the dense linear algebra behind the CTMC solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and a
//     finite-value policy (NaN/Inf rejected on ingestion and Set).
//   - Basic algebra: Mul, Scale, Transpose, MatVec, VecMat, Norm1, NormInf.
//   - Pivoted LU (LUPivot) and Solve, the denominator solve of Expm.
//   - Expm, the matrix exponential by Padé scaling-and-squaring.
//   - SVD (one-sided Jacobi) and PseudoInverse with a relative cut-off.
//
// All kernels accept the Matrix interface, use flat-slice fast paths for
// *Dense, and return sentinel errors (errors.go) wrapped with an operation tag.
// Sizes targeted here are small (n ≤ 100), so every kernel is O(n³) dense.
package matrix
