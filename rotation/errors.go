// SPDX-License-Identifier: MIT

package rotation

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroWeights is returned by WeightedAverage when every weight is zero.
	ErrZeroWeights = errors.New("rotation: all averaging weights are zero")

	// ErrLengthMismatch indicates len(qs) != len(weights).
	ErrLengthMismatch = errors.New("rotation: quaternion and weight counts differ")

	// ErrUnknownAxis indicates an Axis outside AxisX..AxisZ or an unparsable name.
	ErrUnknownAxis = errors.New("rotation: unknown twist axis")
)

// rotationErrorf wraps err with an operation tag, preserving it for errors.Is.
func rotationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
