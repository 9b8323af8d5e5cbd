// SPDX-License-Identifier: MIT

package posespace

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/posespace/regression"
	"github.com/katalvlaran/posespace/rotation"
)

// Evaluate interpolates the outputs for a live pose, refitting first when
// the Interpolator is dirty.
//
// Implementation:
//   - Stage 1: solve every Space; unfitted spaces contribute nothing.
//   - Stage 2: scalars = Σ per-space scalars (+ neutral in Relative mode).
//   - Stage 3: per output slot, pool the rotation columns and normalised
//     weights of every fitted space (see combine) and average them once.
//   - Stage 4: Relative mode pre-multiplies each slot by its neutral rotation.
//
// If every pooled weight is zero the slot falls back to the identity delta
// (the neutral rotation in Relative mode) and the event is logged at debug level.
//
// Errors:
//   - ErrInputDimension when in does not match the sample dimensions.
//   - Fit errors when a refit was needed.
func (ip *Interpolator) Evaluate(in Input) (Output, error) {
	if ip.dirty {
		if err := ip.Fit(); err != nil {
			return Output{}, interpolatorErrorf(opEvaluate, err)
		}
	}
	if len(ip.samples) > 0 && (len(in.Scalars) != ip.dims.scalarIn || len(in.Quats) != ip.dims.quatIn) {
		return Output{}, interpolatorErrorf(opEvaluate, ErrInputDimension)
	}

	live := make([]quat.Number, len(in.Quats))
	for k, q := range in.Quats {
		live[k] = rotation.Normalize(q)
	}

	out := Output{
		Scalars: make([]float64, ip.dims.scalarOut),
		Weights: make(map[Space][]float64, len(regression.Spaces)),
	}
	var results [len(regression.Spaces)]regression.Result
	for _, sp := range regression.Spaces {
		res, err := ip.solvers[sp].Solve(in.Scalars, live)
		if err != nil {
			return Output{}, interpolatorErrorf(opEvaluate, err)
		}
		results[sp] = res
		if res.Empty() {
			continue
		}
		out.Weights[sp] = res.Weights
		if res.Scalars != nil {
			floats.Add(out.Scalars, res.Scalars)
		}
	}
	if ip.neutralScalars != nil {
		floats.Add(out.Scalars, ip.neutralScalars)
	}

	if ip.dims.quatOut > 0 {
		out.Quats = make([]quat.Number, ip.dims.quatOut)
		weights := ip.combineWeights(results)
		for slot := range out.Quats {
			q, err := rotation.WeightedAverage(ip.combineColumns(slot), weights)
			if errors.Is(err, rotation.ErrZeroWeights) {
				ip.log.Debug().Int("slot", slot).Msg("all rotation weights are zero, using neutral")
				q, err = rotation.Identity, nil
			}
			if err != nil {
				return Output{}, interpolatorErrorf(opEvaluate, err)
			}
			if ip.neutralQuats != nil {
				q = quat.Mul(ip.neutralQuats[slot], q)
			}
			out.Quats[slot] = q
		}
	}

	return out, nil
}

// pooled reports whether a solver takes part in rotation pooling.
func pooled(s *regression.Solver) bool {
	return s.Fitted() && s.OutputQuatSlots() > 0
}

// combineColumns lists the rotation columns of one output slot in pooling
// order. Absolute mode takes every column of every fitted space; Relative
// mode starts with the identity delta (the neutral sample) and then takes
// each fitted space's columns except its first.
func (ip *Interpolator) combineColumns(slot int) []quat.Number {
	var cols []quat.Number
	relative := ip.params.OutputMode == Relative
	if relative {
		cols = append(cols, rotation.Identity)
	}
	for _, sp := range regression.Spaces {
		s := &ip.solvers[sp]
		if !pooled(s) {
			continue
		}
		qs := s.OutputQuats(slot)
		if relative {
			qs = qs[1:]
		}
		cols = append(cols, qs...)
	}

	return cols
}

// combineWeights builds the pooled weight vector matching combineColumns.
// In Relative mode any mass missing from a total of 1 goes to the neutral
// column. The result is L2-normalised.
func (ip *Interpolator) combineWeights(results [len(regression.Spaces)]regression.Result) []float64 {
	var w []float64
	relative := ip.params.OutputMode == Relative
	if relative {
		w = append(w, 0)
	}
	for _, sp := range regression.Spaces {
		if !pooled(&ip.solvers[sp]) {
			continue
		}
		ws := results[sp].Weights
		if relative {
			ws = ws[1:]
		}
		w = append(w, ws...)
	}
	if relative {
		if sum := floats.Sum(w); sum < 1 {
			w[0] = 1 - sum
		}
	}

	return regression.NormalizeWeights(w)
}
