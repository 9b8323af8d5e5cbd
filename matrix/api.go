// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication – each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// EigenSym calls the canonical Jacobi eigen-decomposition (symmetric input)
// with DefaultEigenTol and DefaultEigenMaxIter.
func EigenSym(m Matrix) ([]float64, Matrix, error) {
	return Eigen(m, DefaultEigenTol, DefaultEigenMaxIter)
}

// DominantEigen returns the largest eigenvalue of the symmetric matrix m and
// its unit eigenvector. Ties resolve to the lowest index, so the result is
// deterministic.
// Complexity: one EigenSym call plus O(n).
func DominantEigen(m Matrix) (float64, []float64, error) {
	vals, vecs, err := EigenSym(m)
	if err != nil {
		return 0, nil, err
	}
	best := 0
	for i := 1; i < len(vals); i++ {
		if vals[i] > vals[best] {
			best = i
		}
	}
	vec := make([]float64, len(vals))
	for i := range vec {
		vec[i], _ = vecs.At(i, best) // in range: vecs is n×n
	}

	return vals[best], vec, nil
}
