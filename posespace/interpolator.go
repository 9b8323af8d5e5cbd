// SPDX-License-Identifier: MIT

package posespace

import (
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/posespace/regression"
	"github.com/katalvlaran/posespace/rotation"
)

// Interpolator owns one regression.Solver per Space and the neutral pose.
type Interpolator struct {
	log  zerolog.Logger
	axis rotation.Axis

	params  Params
	samples []Sample
	dims    dims
	dirty   bool

	solvers        [len(regression.Spaces)]regression.Solver
	neutralScalars []float64
	neutralQuats   []quat.Number
}

// New returns an empty, dirty Interpolator with DefaultParams.
func New(opts ...Option) *Interpolator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Interpolator{
		log:    o.Logger,
		axis:   o.TwistAxis,
		params: DefaultParams(),
		dirty:  true,
	}
}

// SetSamples replaces the sample set and marks the Interpolator dirty.
//
// Every sample must share the dimensions of the first one and carry at
// least one scalar or rotation input. The slice is deep-copied.
//
// Errors:
//   - ErrInconsistentSample, ErrNoFeatures, ErrUnknownSpace (wrapped with the
//     sample index). On error the previous samples are kept.
func (ip *Interpolator) SetSamples(samples []Sample) error {
	var d dims
	if len(samples) > 0 {
		d = dimsOf(samples[0])
		if d.scalarIn == 0 && d.quatIn == 0 {
			return interpolatorErrorf(opSetSamples, ErrNoFeatures)
		}
	}
	cp := make([]Sample, len(samples))
	for i, s := range samples {
		if dimsOf(s) != d {
			return interpolatorErrorf(opSetSamples, sampleErrorf(i, ErrInconsistentSample))
		}
		if err := s.Space.Validate(); err != nil {
			return interpolatorErrorf(opSetSamples, sampleErrorf(i, err))
		}
		cp[i] = s.clone()
	}

	ip.samples, ip.dims = cp, d
	ip.dirty = true

	return nil
}

// SetParams validates p and marks the Interpolator dirty when p differs
// from the current parameters.
func (ip *Interpolator) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return interpolatorErrorf(opSetParams, err)
	}
	if p != ip.params {
		ip.params = p
		ip.dirty = true
	}

	return nil
}

// Params returns the current parameters.
func (ip *Interpolator) Params() Params { return ip.params }

// SampleCount returns the number of samples set.
func (ip *Interpolator) SampleCount() int { return len(ip.samples) }

// MarkDirty forces a refit on the next Evaluate.
func (ip *Interpolator) MarkDirty() { ip.dirty = true }

// Dirty reports whether the next Evaluate will refit.
func (ip *Interpolator) Dirty() bool { return ip.dirty }

// Fit rebuilds all three solvers from the current samples and parameters.
//
// Implementation:
//   - Stage 1: bucket samples by Space (order Swing, Twist, SwingTwist).
//   - Stage 2: Relative mode only: the first sample of the first non-empty
//     bucket defines the neutral scalars and rotations; every stored output
//     becomes value − neutral and neutral⁻¹·q.
//   - Stage 3: fit each bucket; buckets with < 2 samples stay unfitted.
//
// The dirty flag is cleared only on success.
func (ip *Interpolator) Fit() error {
	start := time.Now()

	var buckets [len(regression.Spaces)][]Sample
	for _, s := range ip.samples {
		buckets[s.Space] = append(buckets[s.Space], s)
	}

	ip.neutralScalars, ip.neutralQuats = nil, nil
	if ip.params.OutputMode == Relative {
		for _, b := range buckets {
			if len(b) == 0 {
				continue
			}
			if ip.neutralScalars == nil && ip.dims.scalarOut > 0 {
				ip.neutralScalars = append([]float64(nil), b[0].OutputScalars...)
			}
			if ip.neutralQuats == nil && ip.dims.quatOut > 0 {
				ip.neutralQuats = make([]quat.Number, ip.dims.quatOut)
				for k, q := range b[0].OutputQuats {
					ip.neutralQuats[k] = rotation.Normalize(q)
				}
			}
		}
	}

	for _, sp := range regression.Spaces {
		in := ip.fitInput(buckets[sp], sp)
		if err := ip.solvers[sp].SetFeatures(in); err != nil {
			return interpolatorErrorf(opFit, err)
		}
		ip.log.Debug().
			Stringer("space", sp).
			Int("samples", len(buckets[sp])).
			Bool("fitted", ip.solvers[sp].Fitted()).
			Int("columns", ip.solvers[sp].Columns()).
			Msg("solver refit")
	}
	ip.dirty = false

	ip.log.Debug().
		Int("samples", len(ip.samples)).
		Stringer("kernel", ip.params.Kernel).
		Float64("radius", ip.params.Radius).
		Float64("regularization", ip.params.Regularization).
		Stringer("mode", ip.params.OutputMode).
		Dur("elapsed", time.Since(start)).
		Msg("interpolator fitted")

	return nil
}

// fitInput converts one bucket into solver tables, applying relative deltas.
func (ip *Interpolator) fitInput(bucket []Sample, sp Space) regression.FitInput {
	in := regression.FitInput{
		Kernel:         ip.params.Kernel,
		Radius:         ip.params.Radius,
		Regularization: ip.params.Regularization,
		Space:          sp,
		TwistAxis:      ip.axis,
	}
	for _, s := range bucket {
		if ip.dims.scalarIn > 0 {
			in.ScalarFeatures = append(in.ScalarFeatures, s.Scalars)
		}
		if ip.dims.quatIn > 0 {
			qs := make([]quat.Number, len(s.Quats))
			for k, q := range s.Quats {
				qs[k] = rotation.Normalize(q)
			}
			in.QuatFeatures = append(in.QuatFeatures, qs)
		}
		if ip.dims.scalarOut > 0 {
			out := append([]float64(nil), s.OutputScalars...)
			if ip.neutralScalars != nil {
				floats.Sub(out, ip.neutralScalars)
			}
			in.ScalarOutputs = append(in.ScalarOutputs, out)
		}
		if ip.dims.quatOut > 0 {
			out := make([]quat.Number, len(s.OutputQuats))
			for k, q := range s.OutputQuats {
				out[k] = rotation.Normalize(q)
				if ip.neutralQuats != nil {
					out[k] = quat.Mul(quat.Conj(ip.neutralQuats[k]), out[k])
				}
			}
			in.QuatOutputs = append(in.QuatOutputs, out)
		}
	}

	return in
}

// SpaceSummary describes the fitted state of one Space.
type SpaceSummary struct {
	Space        Space
	Samples      int
	Fitted       bool
	Columns      int
	SampleRadius []float64
}

// Summary reports the per-space fit state, refitting first if dirty.
func (ip *Interpolator) Summary() ([]SpaceSummary, error) {
	if ip.dirty {
		if err := ip.Fit(); err != nil {
			return nil, err
		}
	}
	out := make([]SpaceSummary, 0, len(regression.Spaces))
	for _, sp := range regression.Spaces {
		s := &ip.solvers[sp]
		out = append(out, SpaceSummary{
			Space:        sp,
			Samples:      s.SampleCount(),
			Fitted:       s.Fitted(),
			Columns:      s.Columns(),
			SampleRadius: s.SampleRadius(),
		})
	}

	return out, nil
}

// Neutral returns copies of the neutral scalars and rotations of the last
// Relative fit; both are nil in Absolute mode.
func (ip *Interpolator) Neutral() ([]float64, []quat.Number) {
	return append([]float64(nil), ip.neutralScalars...), append([]quat.Number(nil), ip.neutralQuats...)
}
