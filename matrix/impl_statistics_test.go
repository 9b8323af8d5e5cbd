// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/posespace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColumnsL2(t *testing.T) {
	x := NewFilledDense(t, 2, 3, []float64{
		3, 0, 1,
		4, 0, 1,
	})
	y, norms, err := matrix.NormalizeColumnsL2(x)
	require.NoError(t, err)
	require.True(t, AlmostEqualSlice([]float64{5, 0, 1.4142135623730951}, norms, 1e-15))

	CompareClose(t, [][]float64{
		{0.6, 0, 0.7071067811865475},
		{0.8, 0, 0.7071067811865475},
	}, y, 1e-15)

	// Input is untouched.
	assert.Equal(t, 3.0, MustAt(t, x, 0, 0))

	_, _, err = matrix.NormalizeColumnsL2(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
