// SPDX-License-Identifier: MIT

// Package regression fits and evaluates a radial-basis-function interpolant
// over a hybrid metric space: Euclidean distance between scalar features and
// swing/twist distance between rotation features.
//
// 🚀 How a fit works
//
//	Given N samples the Solver builds an N×C distance matrix M
//	  [ N scalar columns (if any scalar features) | 2N columns per rotation slot ]
//	applies a radial kernel, and solves
//	  θ = ((MᵀM + λI)⁺ · Mᵀ · I_N)ᵀ        (N×C)
//	so that θ·d maps a live distance vector d onto one weight per sample.
//	Outputs are then reconstructed from the stored sample outputs:
//	  • scalars     – weights · output column
//	  • quaternions – eigen-method weighted average with L2-normalised weights
//
// ✨ Details worth knowing
//   - Scalar features are scaled per column by their L2 norm; the scalar
//     distance block is then divided by its Frobenius norm.
//   - Every sample carries an adaptive radius: 1 shrunk to its nearest
//     non-zero swing/twist distance. Its rotation columns use
//     sampleRadius × radius both at fit and at evaluation time.
//   - The Space decides which part of the rotation distance counts:
//     SpaceSwing zeroes twist, SpaceTwist zeroes swing.
//   - Fewer than two samples leave the Solver unfitted; Solve then returns an
//     empty Result and a nil error.
//
// A Solver is not safe for concurrent use; Solve only reads fitted state, so
// parallel Solve calls are fine once SetFeatures has returned.
package regression
