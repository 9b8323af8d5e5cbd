// SPDX-License-Identifier: MIT

package regression

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/posespace/kernel"
	"github.com/katalvlaran/posespace/matrix"
	"github.com/katalvlaran/posespace/rotation"
)

const (
	opSetFeatures = "SetFeatures"
	opSolve       = "Solve"
)

// MinRadiusDistance is the smallest swing/twist distance that may shrink a
// sample's adaptive radius; closer neighbours count as duplicates.
const MinRadiusDistance = 1e-6

// DefaultSampleRadius is the adaptive radius before any shrinking.
const DefaultSampleRadius = 1.0

// FitInput carries one sample set and the fit parameters.
//
// Tables are indexed [sample][dimension]. Any table may be empty; non-empty
// tables must all hold the same number of rows. Input quaternions are
// expected to be rest-relative already.
type FitInput struct {
	ScalarFeatures [][]float64
	QuatFeatures   [][]quat.Number
	ScalarOutputs  [][]float64
	QuatOutputs    [][]quat.Number

	Kernel         kernel.Kind
	Radius         float64
	Regularization float64
	Space          Space
	TwistAxis      rotation.Axis
}

// Solver holds the fitted state for one sample set in one Space.
// The zero value is an unfitted Solver ready for SetFeatures.
type Solver struct {
	kind   kernel.Kind
	radius float64
	space  Space
	axis   rotation.Axis

	n          int
	scalarCols int
	quatSlots  int

	features     [][]float64     // normalised scalar features, N rows
	featureNorms []float64       // per-column divisors (0 ⇒ column left as is)
	distanceNorm float64         // Frobenius norm of the raw scalar block
	quatFeatures [][]quat.Number // [sample][slot]
	sampleRadius []float64

	outScalars [][]float64     // [sample][output]
	outQuats   [][]quat.Number // [slot][sample]

	theta *matrix.Dense // N×C; nil when unfitted
}

// SetFeatures replaces the sample set and refits the Solver.
//
// Implementation:
//   - Stage 1: validate and copy the tables (the caller keeps ownership).
//   - Stage 2: with fewer than two samples, clear the coefficients and stop.
//   - Stage 3: build the N×C kernel-transformed distance matrix M.
//   - Stage 4: θ = ((MᵀM + λI)⁺ · Mᵀ · I_N)ᵀ.
//
// Errors:
//   - ErrRaggedInput, ErrNoFeatures, ErrSampleCountMismatch, ErrBadRegularization,
//     ErrBadRadius, ErrUnknownSpace, kernel.ErrUnknownKind,
//     rotation.ErrUnknownAxis; matrix errors from the solve.
//
// On error the previous fit is discarded and the Solver is left unfitted.
//
// Complexity:
//   - Time O(N²·(d + slots) + C³) for C distance columns, Space O(N·C).
func (s *Solver) SetFeatures(in FitInput) error {
	*s = Solver{}
	n, scalarCols, quatSlots, err := validateFit(in)
	if err != nil {
		return solverErrorf(opSetFeatures, err)
	}

	s.kind, s.radius, s.space, s.axis = in.Kernel, in.Radius, in.Space, in.TwistAxis
	s.n, s.scalarCols, s.quatSlots = n, scalarCols, quatSlots
	s.features = copyRows(in.ScalarFeatures)
	s.quatFeatures = copyRows(in.QuatFeatures)
	s.outScalars = copyRows(in.ScalarOutputs)
	s.outQuats = transposeQuats(in.QuatOutputs)

	if n <= 1 {
		return nil
	}

	m, err := s.buildDistanceMatrix()
	if err != nil {
		return solverErrorf(opSetFeatures, err)
	}
	theta, err := solveTheta(m, in.Regularization)
	if err != nil {
		return solverErrorf(opSetFeatures, err)
	}
	s.theta = theta

	return nil
}

// valueCols is the number of scalar distance columns (N when scalar features exist).
func (s *Solver) valueCols() int {
	if s.scalarCols > 0 {
		return s.n
	}

	return 0
}

// columns is the total distance-vector length C.
func (s *Solver) columns() int {
	return s.valueCols() + 2*s.n*s.quatSlots
}

// quatColumn returns the column of the swing distance to sample j in slot;
// the twist distance sits right after it.
func (s *Solver) quatColumn(slot, j int) int {
	return s.valueCols() + slot*2*s.n + 2*j
}

// buildDistanceMatrix normalises the scalar features in place and returns
// the kernel-transformed distance matrix.
func (s *Solver) buildDistanceMatrix() (*matrix.Dense, error) {
	m, err := matrix.NewZeros(s.n, s.columns())
	if err != nil {
		return nil, err
	}
	if s.scalarCols > 0 {
		if err = s.fillScalarBlock(m); err != nil {
			return nil, err
		}
	}
	if s.quatSlots > 0 {
		if err = s.fillQuatBlocks(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// fillScalarBlock writes the normalised Euclidean distances into columns [0,N).
func (s *Solver) fillScalarBlock(m *matrix.Dense) error {
	raw, err := matrix.NewDenseFrom(s.n, s.scalarCols, flatten(s.features))
	if err != nil {
		return err
	}
	scaled, norms, err := matrix.NormalizeColumnsL2(raw)
	if err != nil {
		return err
	}
	s.featureNorms = norms
	for i := range s.features {
		if s.features[i], err = scaled.Row(i); err != nil {
			return err
		}
	}

	block, err := matrix.NewZeros(s.n, s.n)
	if err != nil {
		return err
	}
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if err = block.Set(i, j, floats.Distance(s.features[i], s.features[j], 2)); err != nil {
				return err
			}
		}
	}
	if s.distanceNorm, err = matrix.FrobeniusNorm(block); err != nil {
		return err
	}
	norm := s.distanceNorm
	if err = block.Apply(func(_, _ int, v float64) float64 {
		if norm == 0 {
			return v
		}
		return v / norm
	}); err != nil {
		return err
	}
	if err = s.kind.ApplyDense(block, s.radius); err != nil {
		return err
	}

	var v float64
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			v, _ = block.At(i, j)
			if err = m.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// fillQuatBlocks writes the swing/twist distances of every slot, shrinks
// the adaptive radii and applies the kernel per target sample.
func (s *Solver) fillQuatBlocks(m *matrix.Dense) error {
	s.sampleRadius = make([]float64, s.n)
	for i := range s.sampleRadius {
		s.sampleRadius[i] = DefaultSampleRadius
	}

	dist := make([][]float64, s.n) // raw distances, row-major like m
	for i := range dist {
		dist[i] = make([]float64, 2*s.n*s.quatSlots)
	}
	off := s.valueCols()
	var sw, tw float64
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			for slot := 0; slot < s.quatSlots; slot++ {
				sw, tw = rotation.SwingTwistDistance(s.quatFeatures[i][slot], s.quatFeatures[j][slot], s.axis)
				sw, tw = s.space.mask(sw, tw)
				s.shrinkRadius(i, sw)
				s.shrinkRadius(i, tw)
				c := s.quatColumn(slot, j) - off
				dist[i][c], dist[i][c+1] = sw, tw
			}
		}
	}

	var r float64
	for slot := 0; slot < s.quatSlots; slot++ {
		for j := 0; j < s.n; j++ {
			r = s.sampleRadius[j] * s.radius
			c := s.quatColumn(slot, j)
			for i := 0; i < s.n; i++ {
				if err := m.Set(i, c, s.kind.Eval(dist[i][c-off], r)); err != nil {
					return err
				}
				if err := m.Set(i, c+1, s.kind.Eval(dist[i][c-off+1], r)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// shrinkRadius lowers sample i's radius to d when d is a non-duplicate distance.
func (s *Solver) shrinkRadius(i int, d float64) {
	if d > MinRadiusDistance && d < s.sampleRadius[i] {
		s.sampleRadius[i] = d
	}
}

// solveTheta returns ((MᵀM + λI)⁺ · Mᵀ · I_N)ᵀ.
func solveTheta(m *matrix.Dense, lambda float64) (*matrix.Dense, error) {
	normal, err := matrix.RidgeNormal(m, lambda)
	if err != nil {
		return nil, err
	}
	pinv, err := matrix.PseudoInverse(normal, 0)
	if err != nil {
		return nil, err
	}
	mt, err := matrix.T(m)
	if err != nil {
		return nil, err
	}
	proj, err := matrix.Mul(pinv, mt)
	if err != nil {
		return nil, err
	}
	// The identity target keeps one output column per sample (one-hot weights).
	target, err := matrix.NewIdentity(m.Rows())
	if err != nil {
		return nil, err
	}
	coef, err := matrix.Mul(proj, target)
	if err != nil {
		return nil, err
	}
	theta, err := matrix.T(coef)
	if err != nil {
		return nil, err
	}

	return theta.(*matrix.Dense), nil
}

// Fitted reports whether the Solver holds coefficients.
func (s *Solver) Fitted() bool { return s.theta != nil }

// SampleCount returns N of the last SetFeatures call.
func (s *Solver) SampleCount() int { return s.n }

// Space returns the rotation metric space of the last fit.
func (s *Solver) Space() Space { return s.space }

// Columns returns the distance-vector length C (0 when unfitted).
func (s *Solver) Columns() int {
	if !s.Fitted() {
		return 0
	}

	return s.columns()
}

// SampleRadius returns a copy of the adaptive per-sample radii, or nil when
// no rotation features were fitted.
func (s *Solver) SampleRadius() []float64 {
	if s.sampleRadius == nil {
		return nil
	}
	out := make([]float64, len(s.sampleRadius))
	copy(out, s.sampleRadius)

	return out
}

// OutputQuatSlots returns the number of output quaternion slots.
func (s *Solver) OutputQuatSlots() int { return len(s.outQuats) }

// OutputQuats returns a copy of the stored output quaternions of slot, one
// per sample, or nil for an out-of-range slot.
func (s *Solver) OutputQuats(slot int) []quat.Number {
	if slot < 0 || slot >= len(s.outQuats) {
		return nil
	}
	out := make([]quat.Number, len(s.outQuats[slot]))
	copy(out, s.outQuats[slot])

	return out
}

func copyRows[T any](rows [][]T) [][]T {
	if len(rows) == 0 {
		return nil
	}
	out := make([][]T, len(rows))
	for i, r := range rows {
		out[i] = append([]T(nil), r...)
	}

	return out
}

// transposeQuats turns [sample][slot] into [slot][sample].
func transposeQuats(rows [][]quat.Number) [][]quat.Number {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	out := make([][]quat.Number, len(rows[0]))
	for slot := range out {
		out[slot] = make([]quat.Number, len(rows))
		for i := range rows {
			out[slot][i] = rows[i][slot]
		}
	}

	return out
}

func flatten(rows [][]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}
