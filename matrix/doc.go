// Package matrix provides the small dense linear-algebra core used by the
// pose-space interpolator.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     in-place Apply used by the radial kernels.
//   - Canonical kernels (Add, Scale, Mul, Transpose, MatVec, FrobeniusNorm)
//     with strict shape validation and sentinel errors.
//   - Eigen, a deterministic Jacobi eigen-solver for symmetric input, used for
//     the eigenvector form of weighted quaternion averaging.
//   - PseudoInverse, the Moore-Penrose pseudo-inverse via a thin SVD, and
//     RidgeNormal, the ridge-regularised normal matrix MᵀM + λI.
//   - NormalizeColumnsL2, column normalisation that returns the divisors so
//     later inputs can be normalised identically.
//
// All kernels are deterministic: fixed loop orders, no map iteration, no
// hidden randomness. Errors are package sentinels wrapped with an operation
// tag; match them with errors.Is.
//
// See example_test.go for usage patterns.
package matrix
