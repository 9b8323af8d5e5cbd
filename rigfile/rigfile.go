// SPDX-License-Identifier: MIT

package rigfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/num/quat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/posespace/kernel"
	"github.com/katalvlaran/posespace/posespace"
	"github.com/katalvlaran/posespace/regression"
	"github.com/katalvlaran/posespace/rotation"
)

// ErrInvalidRig is wrapped by every validation failure, together with the
// offending field path.
var ErrInvalidRig = errors.New("rigfile: invalid rig")

// Quat is a rotation written [x, y, z, w].
type Quat [4]float64

// Number converts q to a gonum quaternion.
func (q Quat) Number() quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

// FromNumber converts a gonum quaternion to [x, y, z, w].
func FromNumber(n quat.Number) Quat {
	return Quat{n.Imag, n.Jmag, n.Kmag, n.Real}
}

// ParamsDoc mirrors posespace.Params with names instead of enum values.
type ParamsDoc struct {
	Kernel         string   `yaml:"kernel"`
	Radius         *float64 `yaml:"radius"`
	Regularization float64  `yaml:"regularization"`
	OutputMode     string   `yaml:"output_mode"`
}

// InputsDoc declares the input layout.
type InputsDoc struct {
	Scalars   int    `yaml:"scalars"`
	Rotations int    `yaml:"rotations"`
	Rest      []Quat `yaml:"rest"`
}

// OutputsDoc declares the output layout.
type OutputsDoc struct {
	Scalars   int `yaml:"scalars"`
	Rotations int `yaml:"rotations"`
}

// SampleDoc is one example pose.
type SampleDoc struct {
	Name            string    `yaml:"name"`
	Space           string    `yaml:"space"`
	Scalars         []float64 `yaml:"scalars"`
	Rotations       []Quat    `yaml:"rotations"`
	OutputScalars   []float64 `yaml:"output_scalars"`
	OutputRotations []Quat    `yaml:"output_rotations"`
}

// QueryDoc is one live pose to evaluate.
type QueryDoc struct {
	Name      string    `yaml:"name"`
	Scalars   []float64 `yaml:"scalars"`
	Rotations []Quat    `yaml:"rotations"`
}

// Rig is a decoded rig document.
type Rig struct {
	Params    ParamsDoc   `yaml:"params"`
	TwistAxis string      `yaml:"twist_axis"`
	Inputs    InputsDoc   `yaml:"inputs"`
	Outputs   OutputsDoc  `yaml:"outputs"`
	Samples   []SampleDoc `yaml:"samples"`
	Queries   []QueryDoc  `yaml:"queries"`
}

// Load decodes and validates a rig from r.
func Load(r io.Reader) (*Rig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rig Rig
	if err := dec.Decode(&rig); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidRig)
		}
		return nil, fmt.Errorf("decode rig: %w", err)
	}
	if err := rig.Validate(); err != nil {
		return nil, err
	}

	return &rig, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Rig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rig: %w", err)
	}
	defer f.Close()

	rig, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rig, nil
}

// invalidf reports ErrInvalidRig at field path.
func invalidf(path, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", path, ErrInvalidRig, fmt.Sprintf(format, args...))
}

// Validate checks every field against the declared layout.
func (r *Rig) Validate() error {
	if _, err := r.ToParams(); err != nil {
		return err
	}
	if _, err := r.Axis(); err != nil {
		return err
	}

	in, out := r.Inputs, r.Outputs
	if in.Scalars < 0 || in.Rotations < 0 {
		return invalidf("inputs", "negative count")
	}
	if in.Scalars == 0 && in.Rotations == 0 {
		return invalidf("inputs", "no scalar or rotation inputs declared")
	}
	if out.Scalars < 0 || out.Rotations < 0 {
		return invalidf("outputs", "negative count")
	}
	if len(in.Rest) != 0 && len(in.Rest) != in.Rotations {
		return invalidf("inputs.rest", "want %d rotations, got %d", in.Rotations, len(in.Rest))
	}
	if err := checkQuats("inputs.rest", in.Rest); err != nil {
		return err
	}

	for i, s := range r.Samples {
		path := fmt.Sprintf("samples[%d]", i)
		if _, err := regression.ParseSpace(spaceName(s.Space)); err != nil {
			return invalidf(path+".space", "%q", s.Space)
		}
		if err := checkInputs(path, in, s.Scalars, s.Rotations); err != nil {
			return err
		}
		if err := checkOutputs(path, out, s.OutputScalars, s.OutputRotations); err != nil {
			return err
		}
	}
	for i, q := range r.Queries {
		path := fmt.Sprintf("queries[%d]", i)
		if err := checkInputs(path, in, q.Scalars, q.Rotations); err != nil {
			return err
		}
	}

	return nil
}

// checkInputs validates the input part of a sample or query.
func checkInputs(path string, in InputsDoc, scalars []float64, rots []Quat) error {
	if len(scalars) != in.Scalars {
		return invalidf(path+".scalars", "want %d values, got %d", in.Scalars, len(scalars))
	}
	if len(rots) != in.Rotations {
		return invalidf(path+".rotations", "want %d rotations, got %d", in.Rotations, len(rots))
	}

	return checkQuats(path+".rotations", rots)
}

// checkOutputs validates the output part of a sample.
func checkOutputs(path string, out OutputsDoc, scalars []float64, rots []Quat) error {
	if len(scalars) != out.Scalars {
		return invalidf(path+".output_scalars", "want %d values, got %d", out.Scalars, len(scalars))
	}
	if len(rots) != out.Rotations {
		return invalidf(path+".output_rotations", "want %d rotations, got %d", out.Rotations, len(rots))
	}

	return checkQuats(path+".output_rotations", rots)
}

// checkQuats rejects zero-length or non-finite rotations.
func checkQuats(path string, qs []Quat) error {
	for k, q := range qs {
		n := quat.Abs(q.Number())
		if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			return invalidf(fmt.Sprintf("%s[%d]", path, k), "not a rotation: %v", q)
		}
	}

	return nil
}

func spaceName(s string) string {
	if s == "" {
		return regression.SpaceSwingTwist.String()
	}

	return s
}

// ToParams converts the params section, filling defaults for omitted keys.
func (r *Rig) ToParams() (posespace.Params, error) {
	p := posespace.DefaultParams()
	var err error
	if r.Params.Kernel != "" {
		if p.Kernel, err = kernel.ParseKind(r.Params.Kernel); err != nil {
			return p, invalidf("params.kernel", "%q", r.Params.Kernel)
		}
	}
	if r.Params.OutputMode != "" {
		if p.OutputMode, err = posespace.ParseOutputMode(r.Params.OutputMode); err != nil {
			return p, invalidf("params.output_mode", "%q", r.Params.OutputMode)
		}
	}
	if r.Params.Radius != nil {
		p.Radius = *r.Params.Radius
	}
	p.Regularization = r.Params.Regularization
	if err = p.Validate(); err != nil {
		return p, invalidf("params", "%v", err)
	}

	return p, nil
}

// Axis parses twist_axis; empty means rotation.DefaultTwistAxis.
func (r *Rig) Axis() (rotation.Axis, error) {
	if r.TwistAxis == "" {
		return rotation.DefaultTwistAxis, nil
	}
	a, err := rotation.ParseAxis(r.TwistAxis)
	if err != nil {
		return a, invalidf("twist_axis", "%q", r.TwistAxis)
	}

	return a, nil
}

// rest returns the rest rotation of input slot k (identity when omitted).
func (r *Rig) rest(k int) quat.Number {
	if k < len(r.Inputs.Rest) {
		return r.Inputs.Rest[k].Number()
	}

	return rotation.Identity
}

// relative converts absolute input rotations to rest-relative ones.
func (r *Rig) relative(rots []Quat) []quat.Number {
	out := make([]quat.Number, len(rots))
	for k, q := range rots {
		out[k] = rotation.Delta(q.Number(), r.rest(k))
	}

	return out
}

// ToSamples converts the samples section; input rotations become
// rest-relative.
func (r *Rig) ToSamples() ([]posespace.Sample, error) {
	out := make([]posespace.Sample, len(r.Samples))
	for i, s := range r.Samples {
		sp, err := regression.ParseSpace(spaceName(s.Space))
		if err != nil {
			return nil, invalidf(fmt.Sprintf("samples[%d].space", i), "%q", s.Space)
		}
		outRots := make([]quat.Number, len(s.OutputRotations))
		for k, q := range s.OutputRotations {
			outRots[k] = rotation.Normalize(q.Number())
		}
		out[i] = posespace.Sample{
			Scalars:       append([]float64(nil), s.Scalars...),
			Quats:         r.relative(s.Rotations),
			OutputScalars: append([]float64(nil), s.OutputScalars...),
			OutputQuats:   outRots,
			Space:         sp,
		}
	}

	return out, nil
}

// ToQueries converts the queries section into rest-relative inputs.
func (r *Rig) ToQueries() []posespace.Input {
	out := make([]posespace.Input, len(r.Queries))
	for i, q := range r.Queries {
		out[i] = posespace.Input{
			Scalars: append([]float64(nil), q.Scalars...),
			Quats:   r.relative(q.Rotations),
		}
	}

	return out
}

// Build validates the rig and returns a configured Interpolator holding its
// samples and params. opts are applied before the rig's twist axis.
func (r *Rig) Build(opts ...posespace.Option) (*posespace.Interpolator, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	axis, err := r.Axis()
	if err != nil {
		return nil, err
	}
	params, err := r.ToParams()
	if err != nil {
		return nil, err
	}
	samples, err := r.ToSamples()
	if err != nil {
		return nil, err
	}

	ip := posespace.New(append(append([]posespace.Option(nil), opts...), posespace.WithTwistAxis(axis))...)
	if err = ip.SetParams(params); err != nil {
		return nil, err
	}
	if err = ip.SetSamples(samples); err != nil {
		return nil, err
	}

	return ip, nil
}
