// SPDX-License-Identifier: MIT

package regression

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/posespace/matrix"
	"github.com/katalvlaran/posespace/rotation"
)

// Result is the outcome of one Solve call.
type Result struct {
	// RawWeights is θ·d, one weight per sample; scalars are built from it.
	RawWeights []float64
	// Weights is RawWeights scaled to unit L2 length (all zero if θ·d is 0).
	Weights []float64
	// Scalars holds one value per output dimension.
	Scalars []float64
	// Quats holds one averaged rotation per output slot.
	Quats []quat.Number
}

// Empty reports whether the Result came from an unfitted Solver.
func (r Result) Empty() bool { return r.RawWeights == nil }

// Solve evaluates the fitted interpolant at a live pose.
//
// Implementation:
//   - Stage 1: scale the live scalars by the stored column norms and measure
//     their distance to every stored feature row; divide by the stored block
//     norm and apply the kernel with the global radius.
//   - Stage 2: per rotation slot and sample, measure swing/twist distance to
//     the stored rotation and apply the kernel with sampleRadius × radius.
//   - Stage 3: raw weights = θ·d; scalar outputs = raw weights · output column.
//   - Stage 4: normalise the weights and average each output slot.
//
// An unfitted Solver returns an empty Result and a nil error. When every
// weight cancels out, the slot falls back to rotation.Identity.
//
// Errors:
//   - ErrInputDimension if len(scalars) or len(quats) differs from the fit.
//
// Complexity:
//   - Time O(N·C), Space O(C).
func (s *Solver) Solve(scalars []float64, quats []quat.Number) (Result, error) {
	if !s.Fitted() {
		return Result{}, nil
	}
	if len(scalars) != s.scalarCols || len(quats) != s.quatSlots {
		return Result{}, solverErrorf(opSolve, ErrInputDimension)
	}

	raw, err := matrix.MatVec(s.theta, s.distanceVector(scalars, quats))
	if err != nil {
		return Result{}, solverErrorf(opSolve, err)
	}

	res := Result{RawWeights: raw, Weights: NormalizeWeights(raw)}
	if len(s.outScalars) > 0 && len(s.outScalars[0]) > 0 {
		res.Scalars = make([]float64, len(s.outScalars[0]))
		for i, w := range raw {
			floats.AddScaled(res.Scalars, w, s.outScalars[i])
		}
	}
	if len(s.outQuats) > 0 {
		res.Quats = make([]quat.Number, len(s.outQuats))
		for slot, qs := range s.outQuats {
			q, err := rotation.WeightedAverage(qs, res.Weights)
			if errors.Is(err, rotation.ErrZeroWeights) {
				q, err = rotation.Identity, nil
			}
			if err != nil {
				return Result{}, solverErrorf(opSolve, err)
			}
			res.Quats[slot] = q
		}
	}

	return res, nil
}

// distanceVector builds the kernel-transformed live distance vector d (len C)
// with the same column layout as the fitted distance matrix.
func (s *Solver) distanceVector(scalars []float64, quats []quat.Number) []float64 {
	d := make([]float64, s.columns())

	if s.scalarCols > 0 {
		x := make([]float64, len(scalars))
		copy(x, scalars)
		for k, norm := range s.featureNorms {
			if norm != 0 {
				x[k] /= norm
			}
		}
		for i := 0; i < s.n; i++ {
			d[i] = floats.Distance(s.features[i], x, 2)
			if s.distanceNorm != 0 {
				d[i] /= s.distanceNorm
			}
		}
		s.kind.Apply(d[:s.n], s.radius)
	}

	var sw, tw, r float64
	for slot := 0; slot < s.quatSlots; slot++ {
		for j := 0; j < s.n; j++ {
			sw, tw = rotation.SwingTwistDistance(quats[slot], s.quatFeatures[j][slot], s.axis)
			sw, tw = s.space.mask(sw, tw)
			r = s.sampleRadius[j] * s.radius
			c := s.quatColumn(slot, j)
			d[c], d[c+1] = s.kind.Eval(sw, r), s.kind.Eval(tw, r)
		}
	}

	return d
}

// NormalizeWeights returns w scaled to unit L2 length, or all zeros when w
// has zero length. w is not modified.
func NormalizeWeights(w []float64) []float64 {
	out := make([]float64, len(w))
	copy(out, w)
	if n := floats.Norm(out, 2); n > 0 {
		floats.Scale(1/n, out)
	}

	return out
}
