// SPDX-License-Identifier: MIT

// Package matrix: numeric defaults (single source of truth).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each default is consumed by a kernel and covered by tests.
package matrix

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Apply.
	DefaultValidateNaNInf = true

	// MachineEpsilon is the float64 unit round-off used as the default
	// pseudo-inverse cut-off factor (std::numeric_limits<double>::epsilon()).
	MachineEpsilon = 2.220446049250313e-16
)

// Jacobi eigen-solver defaults.
const (
	// DefaultEigenTol is the absolute off-diagonal threshold at which Jacobi
	// sweeps stop. Suitable for the small (4×4) symmetric systems of
	// quaternion averaging.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 256
)
