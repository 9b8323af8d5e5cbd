// SPDX-License-Identifier: MIT
// Package matrix: Moore-Penrose pseudo-inverse and ridge normal equations.
//
// Purpose:
//   - PseudoInverse regularises least-squares fits whose normal matrix is
//     singular or ill-conditioned (near-duplicate samples).
//   - The thin SVD is delegated to gonum's LAPACK-backed mat.SVD; results are
//     copied back into *Dense so callers stay on this package's surface.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opPseudoInverse = "PseudoInverse"
	opRidgeNormal   = "RidgeNormal"
)

// PseudoInverse computes A⁺ (cols×rows) from the thin SVD A = U·Σ·Vᵀ as
// A⁺ = V·Σ⁺·Uᵀ.
//
// Implementation:
//   - Stage 1: copy A into a gonum *mat.Dense and factorize with mat.SVDThin.
//   - Stage 2: cut-off = eps · max(rows, cols) · σmax. Singular values at or
//     below the cut-off contribute 0 (never 1/σ), so rank-deficient input does
//     not blow up into ±Inf/NaN.
//   - Stage 3: accumulate V·Σ⁺·Uᵀ in fixed i→j→k order.
//
// Inputs:
//   - a:   any non-nil Matrix.
//   - eps: relative cut-off factor; eps ≤ 0 selects MachineEpsilon.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite eps), ErrSVDFailed.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func PseudoInverse(a Matrix, eps float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, matrixErrorf(opPseudoInverse, ErrNaNInf)
	}
	if eps <= 0 {
		eps = MachineEpsilon
	}
	src, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	rows, cols := src.r, src.c
	buf := make([]float64, len(src.data))
	copy(buf, src.data) // gonum must not alias our storage
	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(rows, cols, buf), mat.SVDThin); !ok {
		return nil, matrixErrorf(opPseudoInverse, ErrSVDFailed)
	}
	var u, v mat.Dense
	svd.UTo(&u) // rows×k
	svd.VTo(&v) // cols×k
	sigma := svd.Values(nil)

	// Values are sorted descending; σmax is the first one.
	sigmaMax := NormZero
	if len(sigma) > 0 {
		sigmaMax = math.Abs(sigma[0])
	}
	cutoff := eps * float64(max(rows, cols)) * sigmaMax
	inv := make([]float64, len(sigma))
	for k, s := range sigma {
		if math.Abs(s) > cutoff {
			inv[k] = 1 / s
		}
	}

	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	var (
		i, j, k int
		acc     float64
	)
	for i = 0; i < cols; i++ {
		for j = 0; j < rows; j++ {
			acc = ZeroSum
			for k = 0; k < len(inv); k++ {
				if inv[k] == 0 {
					continue
				}
				acc += v.At(i, k) * inv[k] * u.At(j, k)
			}
			out.data[i*rows+j] = acc
		}
	}

	return out, nil
}

// RidgeNormal builds the ridge-regularised normal matrix MᵀM + λI (cols×cols).
//
// Implementation:
//   - Stage 1: MᵀM via Transpose and Mul.
//   - Stage 2: add λ·I (Scale of NewIdentity) with Add.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite λ).
//
// Complexity:
//   - Time O(r·c²), Space O(c²).
func RidgeNormal(m Matrix, lambda float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRidgeNormal, err)
	}
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, matrixErrorf(opRidgeNormal, ErrNaNInf)
	}
	mt, err := T(m)
	if err != nil {
		return nil, matrixErrorf(opRidgeNormal, err)
	}
	gram, err := Mul(mt, m)
	if err != nil {
		return nil, matrixErrorf(opRidgeNormal, err)
	}
	id, err := NewIdentity(m.Cols())
	if err != nil {
		return nil, matrixErrorf(opRidgeNormal, err)
	}
	ridge, err := Scale(id, lambda)
	if err != nil {
		return nil, matrixErrorf(opRidgeNormal, err)
	}
	normal, err := Add(gram, ridge)
	if err != nil {
		return nil, matrixErrorf(opRidgeNormal, err)
	}

	return normal.(*Dense), nil // Add always allocates a *Dense
}
