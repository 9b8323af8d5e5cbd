// SPDX-License-Identifier: MIT

package rotation

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/posespace/matrix"
)

const opWeightedAverage = "WeightedAverage"

// WeightedAverage returns the weighted mean rotation of qs.
//
// Implementation:
//   - Stage 1: scale each quaternion by its weight, forming the 4×n matrix Q.
//   - Stage 2: accumulate the symmetric 4×4 matrix Q·Qᵀ = Σ wᵢ² qᵢqᵢᵀ.
//   - Stage 3: the dominant eigenvector (Jacobi, matrix.DominantEigen) is the
//     average; it is normalised and flipped to the w ≥ 0 hemisphere.
//
// Because only qᵢqᵢᵀ enters, the result does not depend on the sign of any qᵢ.
//
// Errors:
//   - ErrLengthMismatch when len(qs) != len(weights).
//   - ErrZeroWeights when qs is empty or every weight is 0.
//   - matrix.ErrMatrixEigenFailed if the eigen solve does not converge.
//
// Complexity:
//   - Time O(n + 4³·iter), Space O(1) beyond the 4×4 accumulator.
func WeightedAverage(qs []quat.Number, weights []float64) (quat.Number, error) {
	if len(qs) != len(weights) {
		return Identity, rotationErrorf(opWeightedAverage, ErrLengthMismatch)
	}

	var acc [16]float64
	nonZero := false
	for i, q := range qs {
		w := weights[i]
		if w == 0 {
			continue
		}
		nonZero = true
		v := [4]float64{q.Real * w, q.Imag * w, q.Jmag * w, q.Kmag * w}
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				acc[r*4+c] += v[r] * v[c]
			}
		}
	}
	if !nonZero {
		return Identity, rotationErrorf(opWeightedAverage, ErrZeroWeights)
	}

	m, err := matrix.NewDenseFrom(4, 4, acc[:])
	if err != nil {
		return Identity, rotationErrorf(opWeightedAverage, err)
	}
	_, vec, err := matrix.DominantEigen(m)
	if err != nil {
		return Identity, rotationErrorf(opWeightedAverage, err)
	}

	out := Normalize(quat.Number{Real: vec[0], Imag: vec[1], Jmag: vec[2], Kmag: vec[3]})
	if out.Real < 0 {
		out = quat.Scale(-1, out)
	}

	return out, nil
}
