// SPDX-License-Identifier: MIT
// Package matrix: column statistics used for feature scaling.

package matrix

import "math"

const opNormalizeColumnsL2 = "NormalizeColumnsL2"

// NormalizeColumnsL2 returns Y where each column j is divided by its L2 norm,
// together with the per-column norms.
//
// Implementation:
//   - Stage 1: compute √(Σ_i x_ij²) per column in fixed i→j order.
//   - Stage 2: scale every column with norm > 0 by 1/norm; degenerate
//     (all-zero) columns keep a factor of 1.
//
// Behavior highlights:
//   - X is not mutated. The returned norms are the divisors to reuse on new
//     rows (skip the division where the norm is 0).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeColumnsL2(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}

	r, c := src.r, src.c
	norms := make([]float64, c)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.data[i*c+j]
			norms[j] += v * v
		}
	}
	for j = 0; j < c; j++ {
		norms[j] = math.Sqrt(norms[j])
	}

	scale := make([]float64, c)
	for j = 0; j < c; j++ {
		scale[j] = 1
		if norms[j] > 0 {
			scale[j] = 1 / norms[j]
		}
	}
	Y, err := ewScaleCols(src, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}

	return Y, norms, nil
}
