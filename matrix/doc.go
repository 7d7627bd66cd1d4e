// Package matrix provides the dense numeric substrate used by the Markov
// stationary-distribution solver.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy (NaN/±Inf are rejected on write).
//   - MatVec (y = A·x) and VecMat (y = xᵀ·A) kernels with a flat-slice
//     fast-path for *Dense and an interface fallback for any Matrix.
//   - RowSums (used by ValidateRowStochastic) and vector distances
//     (MaxAbsDiff, L1Diff) used by convergence checks.
//   - Central validators (ValidateSquare, ValidateVecLen,
//     ValidateRowStochastic, ...) returning sentinel errors.
//
// All loops run in a fixed i→j order, so results are bit-for-bit
// reproducible for a given input.
//
// See the examples in this package for usage patterns.
package matrix
