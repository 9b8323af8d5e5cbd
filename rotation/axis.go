// SPDX-License-Identifier: MIT

package rotation

import (
	"strings"

	"gonum.org/v1/gonum/num/quat"
)

// Axis selects the local axis that twist is measured around.
type Axis int

const (
	// AxisX is the default twist axis (bones aimed down +X).
	AxisX Axis = iota
	// AxisY measures twist around Y.
	AxisY
	// AxisZ measures twist around Z.
	AxisZ
)

// DefaultTwistAxis is the axis used when none is configured.
const DefaultTwistAxis = AxisX

var axisNames = [...]string{"x", "y", "z"}

// String returns the lowercase axis name ("x", "y", "z").
func (a Axis) String() string {
	if err := a.Validate(); err != nil {
		return "unknown"
	}

	return axisNames[a]
}

// Validate returns ErrUnknownAxis for values outside AxisX..AxisZ.
func (a Axis) Validate() error {
	if a < AxisX || a > AxisZ {
		return ErrUnknownAxis
	}

	return nil
}

// ParseAxis maps "x", "y" or "z" (any case) to an Axis.
func ParseAxis(s string) (Axis, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range axisNames {
		if n == name {
			return Axis(i), nil
		}
	}

	return AxisX, rotationErrorf("ParseAxis("+s+")", ErrUnknownAxis)
}

// component returns the imaginary part of q along a.
func (a Axis) component(q quat.Number) float64 {
	switch a {
	case AxisY:
		return q.Jmag
	case AxisZ:
		return q.Kmag
	default:
		return q.Imag
	}
}

// pure builds the pure-axis part (0 except along a) scaled by v.
func (a Axis) pure(w, v float64) quat.Number {
	switch a {
	case AxisY:
		return quat.Number{Real: w, Jmag: v}
	case AxisZ:
		return quat.Number{Real: w, Kmag: v}
	default:
		return quat.Number{Real: w, Imag: v}
	}
}
