// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/posespace/matrix"
	"github.com/stretchr/testify/require"
)

func TestPseudoInverseSquare(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{4, 7, 2, 6})
	inv, err := matrix.PseudoInverse(a, 0)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, 1e-12)
}

func TestPseudoInverseRectangular(t *testing.T) {
	a := NewFilledDense(t, 3, 2, []float64{1, 0, 0, 1, 0, 0})
	inv, err := matrix.PseudoInverse(a, 0)
	require.NoError(t, err)
	require.Equal(t, 2, inv.Rows())
	require.Equal(t, 3, inv.Cols())
	CompareClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, inv, 1e-12)
}

// TestPseudoInverseSingular checks the Moore-Penrose identity A·A⁺·A = A on rank-deficient input.
func TestPseudoInverseSingular(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 2, 4})
	inv, err := matrix.PseudoInverse(hide{a}, 0)
	require.NoError(t, err)
	// Rank-one: A⁺ = Aᵀ / ‖A‖_F² = Aᵀ / 25.
	CompareClose(t, [][]float64{{0.04, 0.08}, {0.08, 0.16}}, inv, 1e-12)

	aa, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	back, err := matrix.Mul(aa, a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 2}, {2, 4}}, back, 1e-12)

	zero, err := matrix.PseudoInverse(MustDense(t, 2, 2), 0)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0, 0}, {0, 0}}, zero, 0)
}

func TestPseudoInverseRejects(t *testing.T) {
	_, err := matrix.PseudoInverse(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.PseudoInverse(MustDense(t, 1, 1), math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestRidgeNormal(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	n, err := matrix.RidgeNormal(m, 0.5)
	require.NoError(t, err)
	// MᵀM = [[10,14],[14,20]].
	CompareClose(t, [][]float64{{10.5, 14}, {14, 20.5}}, n, 0)

	// Rectangular input through the At-based path: (3×2)ᵀ(3×2) is 2×2.
	r := NewFilledDense(t, 3, 2, []float64{1, 0, 0, 1, 1, 1})
	n, err = matrix.RidgeNormal(hide{r}, 0)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{2, 1}, {1, 2}}, n, 0)

	_, err = matrix.RidgeNormal(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.RidgeNormal(m, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
