// SPDX-License-Identifier: MIT

package posespace

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/posespace/kernel"
	"github.com/katalvlaran/posespace/regression"
)

// Space tags the rotation metric a sample is matched in.
type Space = regression.Space

const (
	SpaceSwing      = regression.SpaceSwing
	SpaceTwist      = regression.SpaceTwist
	SpaceSwingTwist = regression.SpaceSwingTwist
)

// OutputMode selects how sample outputs are stored and recombined.
//
//   - Absolute – outputs are used as given.
//   - Relative – outputs are stored as deltas from the neutral sample and the
//     neutral is added back (scalars) or pre-multiplied (rotations).
type OutputMode int

const (
	Absolute OutputMode = iota
	Relative
)

var outputModeNames = [...]string{"absolute", "relative"}

func (m OutputMode) String() string {
	if m.Validate() != nil {
		return fmt.Sprintf("mode(%d)", int(m))
	}

	return outputModeNames[m]
}

// Validate returns ErrUnknownOutputMode for values other than Absolute/Relative.
func (m OutputMode) Validate() error {
	if m != Absolute && m != Relative {
		return ErrUnknownOutputMode
	}

	return nil
}

// ParseOutputMode maps "absolute" or "relative" to an OutputMode.
func ParseOutputMode(s string) (OutputMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range outputModeNames {
		if n == name {
			return OutputMode(i), nil
		}
	}

	return Absolute, fmt.Errorf("ParseOutputMode(%q): %w", s, ErrUnknownOutputMode)
}

// Default parameter values.
const (
	DefaultKernel         = kernel.Linear
	DefaultRadius         = 1.0
	DefaultRegularization = 0.0
	DefaultOutputMode     = Absolute
)

// Params holds every fit-affecting parameter besides the samples.
//
// Kernel         – radial basis function applied to all distances.
// Radius         – global kernel radius; ≤ 0 is floored to kernel.MinRadius.
// Regularization – ridge term λ ≥ 0 added to MᵀM.
// OutputMode     – Absolute or Relative.
type Params struct {
	Kernel         kernel.Kind
	Radius         float64
	Regularization float64
	OutputMode     OutputMode
}

// DefaultParams returns the linear kernel, radius 1, no regularization and
// absolute outputs.
func DefaultParams() Params {
	return Params{
		Kernel:         DefaultKernel,
		Radius:         DefaultRadius,
		Regularization: DefaultRegularization,
		OutputMode:     DefaultOutputMode,
	}
}

// Validate checks the enums and the finiteness of Radius and Regularization.
func (p Params) Validate() error {
	if err := p.Kernel.Validate(); err != nil {
		return err
	}
	if err := p.OutputMode.Validate(); err != nil {
		return err
	}
	if math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) {
		return regression.ErrBadRadius
	}
	if math.IsNaN(p.Regularization) || math.IsInf(p.Regularization, 0) || p.Regularization < 0 {
		return regression.ErrBadRegularization
	}

	return nil
}

// Sample is one example pose. Quats are rest-relative input rotations.
type Sample struct {
	Scalars       []float64
	Quats         []quat.Number
	OutputScalars []float64
	OutputQuats   []quat.Number
	Space         Space
}

// clone deep-copies s.
func (s Sample) clone() Sample {
	return Sample{
		Scalars:       append([]float64(nil), s.Scalars...),
		Quats:         append([]quat.Number(nil), s.Quats...),
		OutputScalars: append([]float64(nil), s.OutputScalars...),
		OutputQuats:   append([]quat.Number(nil), s.OutputQuats...),
		Space:         s.Space,
	}
}

// Input is a live pose with the same dimensions as the samples.
type Input struct {
	Scalars []float64
	Quats   []quat.Number
}

// Output is the interpolated result of one Evaluate call.
type Output struct {
	Scalars []float64
	Quats   []quat.Number
	// Weights holds the normalised per-sample weights of every fitted
	// space, in the order the samples were given within that space.
	Weights map[Space][]float64
}

// dims records the shared dimensions of a sample set.
type dims struct {
	scalarIn, quatIn, scalarOut, quatOut int
}

func dimsOf(s Sample) dims {
	return dims{len(s.Scalars), len(s.Quats), len(s.OutputScalars), len(s.OutputQuats)}
}
