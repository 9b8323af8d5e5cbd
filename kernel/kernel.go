// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/posespace/matrix"
)

// Kind enumerates the supported radial basis functions.
type Kind int

const (
	Linear Kind = iota
	Gaussian
	ThinPlate
	MultiQuadric
	InverseMultiQuadric
	WendlandC2
)

const (
	// MinRadius replaces any radius ≤ 0.
	MinRadius = 0.001

	// GaussianFalloff scales the radius into the Gaussian's standard deviation.
	GaussianFalloff = 0.4
)

// ErrUnknownKind indicates a Kind outside Linear..WendlandC2 or an unknown name.
var ErrUnknownKind = errors.New("kernel: unknown kernel kind")

var kindNames = [...]string{
	"linear",
	"gaussian",
	"thin_plate",
	"multi_quadric",
	"inverse_multi_quadric",
	"wendland_c2",
}

// String returns the snake_case name used in rig files.
func (k Kind) String() string {
	if k.Validate() != nil {
		return fmt.Sprintf("kernel(%d)", int(k))
	}

	return kindNames[k]
}

// Validate reports ErrUnknownKind for out-of-range values.
func (k Kind) Validate() error {
	if k < Linear || k > WendlandC2 {
		return ErrUnknownKind
	}

	return nil
}

// ParseKind maps a name such as "gaussian" or "thin-plate" to its Kind.
// Dashes and spaces are accepted in place of underscores.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return Linear, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// floor applies the MinRadius policy.
func floor(r float64) float64 {
	if r > 0 {
		return r
	}

	return MinRadius
}

// Eval returns φ(x) for radius r. Unknown kinds behave like Linear.
func (k Kind) Eval(x, r float64) float64 {
	r = floor(r)
	switch k {
	case Gaussian:
		s := r * GaussianFalloff
		return math.Exp(-(x * x) / (2 * s * s))
	case ThinPlate:
		v := x / r
		if v > 0 {
			return v * v * math.Log(v)
		}
		return v
	case MultiQuadric:
		return math.Sqrt(x*x + r*r)
	case InverseMultiQuadric:
		return 1 / math.Sqrt(x*x+r*r)
	case WendlandC2:
		v := x / r
		if v >= 1 {
			return 0
		}
		return math.Pow(1-v, 4) * (4*v + 1)
	default:
		return x
	}
}

// Apply replaces every xs[i] with φ(xs[i]) for radius r.
func (k Kind) Apply(xs []float64, r float64) {
	if k == Linear {
		return
	}
	for i, x := range xs {
		xs[i] = k.Eval(x, r)
	}
}

// ApplyDense transforms m in place with radius r.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - matrix.ErrNaNInf if a result is not finite.
func (k Kind) ApplyDense(m *matrix.Dense, r float64) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("ApplyDense: %w", err)
	}
	if k == Linear {
		return nil
	}

	return m.Apply(func(_, _ int, v float64) float64 { return k.Eval(v, r) })
}
