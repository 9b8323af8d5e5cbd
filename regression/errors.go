// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedInput indicates rows of one feature/output table with different lengths.
	ErrRaggedInput = errors.New("regression: ragged input rows")

	// ErrNoFeatures indicates samples with neither scalar nor rotation inputs.
	ErrNoFeatures = errors.New("regression: samples carry no inputs")

	// ErrSampleCountMismatch indicates feature/output tables with different sample counts.
	ErrSampleCountMismatch = errors.New("regression: sample counts differ")

	// ErrBadRegularization indicates a negative or non-finite regularization.
	ErrBadRegularization = errors.New("regression: regularization must be finite and ≥ 0")

	// ErrBadRadius indicates a non-finite kernel radius.
	ErrBadRadius = errors.New("regression: radius must be finite")

	// ErrInputDimension indicates live inputs whose sizes differ from the fit.
	ErrInputDimension = errors.New("regression: live input dimension differs from fit")

	// ErrUnknownSpace indicates a Space outside SpaceSwing..SpaceSwingTwist.
	ErrUnknownSpace = errors.New("regression: unknown solver space")
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
func solverErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
