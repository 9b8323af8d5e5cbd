// SPDX-License-Identifier: MIT

package regression

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// rowWidth returns the common length of rows, or ErrRaggedInput.
// An empty table has width 0.
func rowWidth[T float64 | quat.Number](rows [][]T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	w := len(rows[0])
	for _, r := range rows[1:] {
		if len(r) != w {
			return 0, ErrRaggedInput
		}
	}

	return w, nil
}

// validateFit checks every FitInput table and parameter and returns the
// sample count together with the scalar and rotation input widths. A
// non-empty sample set must carry at least one scalar or rotation input.
func validateFit(in FitInput) (n, scalarCols, quatSlots int, err error) {
	if err = in.Kernel.Validate(); err != nil {
		return 0, 0, 0, err
	}
	if err = in.Space.Validate(); err != nil {
		return 0, 0, 0, err
	}
	if err = in.TwistAxis.Validate(); err != nil {
		return 0, 0, 0, err
	}
	if math.IsNaN(in.Regularization) || math.IsInf(in.Regularization, 0) || in.Regularization < 0 {
		return 0, 0, 0, ErrBadRegularization
	}
	if math.IsNaN(in.Radius) || math.IsInf(in.Radius, 0) {
		return 0, 0, 0, ErrBadRadius
	}

	if scalarCols, err = rowWidth(in.ScalarFeatures); err != nil {
		return 0, 0, 0, err
	}
	if quatSlots, err = rowWidth(in.QuatFeatures); err != nil {
		return 0, 0, 0, err
	}
	if _, err = rowWidth(in.ScalarOutputs); err != nil {
		return 0, 0, 0, err
	}
	if _, err = rowWidth(in.QuatOutputs); err != nil {
		return 0, 0, 0, err
	}

	n = len(in.ScalarFeatures)
	if n == 0 {
		n = len(in.QuatFeatures)
	}
	for _, count := range []int{len(in.ScalarFeatures), len(in.QuatFeatures), len(in.ScalarOutputs), len(in.QuatOutputs)} {
		if count != 0 && count != n {
			return 0, 0, 0, ErrSampleCountMismatch
		}
	}
	if n > 0 && scalarCols == 0 && quatSlots == 0 {
		return 0, 0, 0, ErrNoFeatures
	}

	return n, scalarCols, quatSlots, nil
}
