// SPDX-License-Identifier: MIT
package posespace_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/posespace/kernel"
	"github.com/katalvlaran/posespace/posespace"
	"github.com/katalvlaran/posespace/regression"
	"github.com/katalvlaran/posespace/rotation"
)

const tol = 1e-9

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func twistX(deg float64) quat.Number { return rotation.FromAxisAngle(1, 0, 0, rad(deg)) }
func aboutZ(deg float64) quat.Number { return rotation.FromAxisAngle(0, 0, 1, rad(deg)) }

func sameRotation(t *testing.T, want, got quat.Number) {
	t.Helper()
	assert.InDelta(t, 1.0, math.Abs(rotation.Dot(want, got)), 1e-7, "want %v, got %v", want, got)
}

// debugLogger returns a logger writing JSON lines into buf.
func debugLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).Level(zerolog.DebugLevel)
}

func TestScalarScenario(t *testing.T) {
	ip := posespace.New()
	require.NoError(t, ip.SetSamples([]posespace.Sample{
		{Scalars: []float64{0}, OutputScalars: []float64{0}, Space: posespace.SpaceSwingTwist},
		{Scalars: []float64{1}, OutputScalars: []float64{10}, Space: posespace.SpaceSwingTwist},
	}))

	for _, tc := range []struct{ in, want float64 }{{0, 0}, {1, 10}, {0.5, 5}} {
		out, err := ip.Evaluate(posespace.Input{Scalars: []float64{tc.in}})
		require.NoError(t, err)
		assert.InDelta(t, tc.want, out.Scalars[0], tol, "input %g", tc.in)
		assert.Nil(t, out.Quats)
	}
}

// TestDirtyGating counts refits through the debug log.
func TestDirtyGating(t *testing.T) {
	var buf bytes.Buffer
	ip := posespace.New(posespace.WithLogger(debugLogger(&buf)))
	fits := func() int { return strings.Count(buf.String(), "interpolator fitted") }

	require.True(t, ip.Dirty())
	require.NoError(t, ip.SetSamples([]posespace.Sample{
		{Scalars: []float64{0}, OutputScalars: []float64{1}},
		{Scalars: []float64{2}, OutputScalars: []float64{3}},
	}))
	_, err := ip.Evaluate(posespace.Input{Scalars: []float64{1}})
	require.NoError(t, err)
	assert.False(t, ip.Dirty())
	assert.Equal(t, 1, fits())

	// Live input changes never refit.
	_, err = ip.Evaluate(posespace.Input{Scalars: []float64{1.5}})
	require.NoError(t, err)
	assert.Equal(t, 1, fits())

	// Unchanged params keep the fit.
	require.NoError(t, ip.SetParams(posespace.DefaultParams()))
	assert.False(t, ip.Dirty())

	p := posespace.DefaultParams()
	p.Kernel = kernel.Gaussian
	require.NoError(t, ip.SetParams(p))
	assert.True(t, ip.Dirty())
	assert.Equal(t, p, ip.Params())
	_, err = ip.Evaluate(posespace.Input{Scalars: []float64{1}})
	require.NoError(t, err)
	assert.Equal(t, 2, fits())

	ip.MarkDirty()
	_, err = ip.Evaluate(posespace.Input{Scalars: []float64{1}})
	require.NoError(t, err)
	assert.Equal(t, 3, fits())
}

func TestRelativeScalars(t *testing.T) {
	ip := posespace.New()
	p := posespace.DefaultParams()
	p.OutputMode = posespace.Relative
	require.NoError(t, ip.SetParams(p))
	require.NoError(t, ip.SetSamples([]posespace.Sample{
		{Quats: []quat.Number{rotation.Identity}, OutputScalars: []float64{5}, Space: posespace.SpaceTwist},
		{Quats: []quat.Number{twistX(90)}, OutputScalars: []float64{8}, Space: posespace.SpaceTwist},
	}))

	out, err := ip.Evaluate(posespace.Input{Quats: []quat.Number{rotation.Identity}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, out.Scalars[0], tol)

	out, err = ip.Evaluate(posespace.Input{Quats: []quat.Number{twistX(90)}})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, out.Scalars[0], tol)

	neutral, quats := ip.Neutral()
	assert.Equal(t, []float64{5}, neutral)
	assert.Nil(t, quats)
}

func TestRelativeRotations(t *testing.T) {
	ip := posespace.New()
	require.NoError(t, ip.SetParams(posespace.Params{Kernel: kernel.Linear, Radius: 1, OutputMode: posespace.Relative}))
	require.NoError(t, ip.SetSamples([]posespace.Sample{
		{Quats: []quat.Number{rotation.Identity}, OutputQuats: []quat.Number{aboutZ(10)}, Space: posespace.SpaceTwist},
		{Quats: []quat.Number{twistX(90)}, OutputQuats: []quat.Number{aboutZ(50)}, Space: posespace.SpaceTwist},
	}))

	out, err := ip.Evaluate(posespace.Input{Quats: []quat.Number{rotation.Identity}})
	require.NoError(t, err)
	require.Len(t, out.Quats, 1)
	sameRotation(t, aboutZ(10), out.Quats[0])

	out, err = ip.Evaluate(posespace.Input{Quats: []quat.Number{twistX(90)}})
	require.NoError(t, err)
	sameRotation(t, aboutZ(50), out.Quats[0])

	// Halfway between the samples the output stays between the two rotations.
	out, err = ip.Evaluate(posespace.Input{Quats: []quat.Number{twistX(45)}})
	require.NoError(t, err)
	_, _, z := rotation.ToEulerXYZ(out.Quats[0])
	assert.Greater(t, z, 10.0)
	assert.Less(t, z, 50.0)
}

// TestPoolingAcrossSpaces fits two samples in each of the Swing and Twist
// spaces and checks how their rotation columns and weights are pooled.
// Every live pose below matches one sample per space exactly, so each
// space yields a one-hot weight vector.
func TestPoolingAcrossSpaces(t *testing.T) {
	samples := []posespace.Sample{
		{Quats: []quat.Number{rotation.Identity}, OutputScalars: []float64{1}, OutputQuats: []quat.Number{aboutZ(10)}, Space: posespace.SpaceSwing},
		{Quats: []quat.Number{aboutZ(60)}, OutputScalars: []float64{3}, OutputQuats: []quat.Number{aboutZ(40)}, Space: posespace.SpaceSwing},
		{Quats: []quat.Number{rotation.Identity}, OutputScalars: []float64{5}, OutputQuats: []quat.Number{aboutZ(20)}, Space: posespace.SpaceTwist},
		{Quats: []quat.Number{twistX(90)}, OutputScalars: []float64{9}, OutputQuats: []quat.Number{aboutZ(70)}, Space: posespace.SpaceTwist},
	}
	var (
		rest     = rotation.Identity
		twisted  = twistX(90)
		combined = quat.Mul(twistX(90), aboutZ(60)) // twist·swing
	)

	cases := []struct {
		name   string
		mode   posespace.OutputMode
		in     quat.Number
		scalar float64
		zDeg   float64
	}{
		// Swing and twist both pick their first sample: the whole weight
		// falls back to the neutral column.
		{"relative neutral", posespace.Relative, rest, 5, 10},
		// Only the twist space's second sample is active: Σw = 1.
		{"relative twisted", posespace.Relative, twisted, 9, 70},
		// Both second samples are active: Σw = 2, the neutral weight stays 0
		// and the two deltas (30° and 60°) are averaged evenly.
		{"relative combined", posespace.Relative, combined, 11, 55},
		{"absolute rest", posespace.Absolute, rest, 6, 15},
		{"absolute twisted", posespace.Absolute, twisted, 10, 40},
		{"absolute combined", posespace.Absolute, combined, 12, 55},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ip := posespace.New()
			require.NoError(t, ip.SetParams(posespace.Params{Kernel: kernel.Linear, Radius: 1, OutputMode: tc.mode}))
			require.NoError(t, ip.SetSamples(samples))

			out, err := ip.Evaluate(posespace.Input{Quats: []quat.Number{tc.in}})
			require.NoError(t, err)
			require.Contains(t, out.Weights, posespace.SpaceSwing)
			require.Contains(t, out.Weights, posespace.SpaceTwist)
			assert.NotContains(t, out.Weights, posespace.SpaceSwingTwist)

			assert.InDelta(t, tc.scalar, out.Scalars[0], 1e-7)
			require.Len(t, out.Quats, 1)
			sameRotation(t, aboutZ(tc.zDeg), out.Quats[0])
			x, y, z := rotation.ToEulerXYZ(out.Quats[0])
			assert.InDelta(t, 0.0, x, 1e-5)
			assert.InDelta(t, 0.0, y, 1e-5)
			assert.InDelta(t, tc.zDeg, z, 1e-5)
		})
	}
}

func TestAbsoluteRotationReproduction(t *testing.T) {
	samples := []posespace.Sample{
		{Quats: []quat.Number{twistX(0)}, OutputQuats: []quat.Number{aboutZ(0), twistX(5)}},
		{Quats: []quat.Number{twistX(45)}, OutputQuats: []quat.Number{aboutZ(30), twistX(15)}},
		{Quats: []quat.Number{twistX(90)}, OutputQuats: []quat.Number{aboutZ(60), twistX(25)}},
	}
	for i := range samples {
		samples[i].Space = posespace.SpaceSwingTwist
	}
	ip := posespace.New()
	require.NoError(t, ip.SetSamples(samples))

	for i, s := range samples {
		out, err := ip.Evaluate(posespace.Input{Quats: s.Quats})
		require.NoError(t, err)
		require.Len(t, out.Quats, 2)
		sameRotation(t, s.OutputQuats[0], out.Quats[0])
		sameRotation(t, s.OutputQuats[1], out.Quats[1])
		assert.InDelta(t, 1.0, math.Abs(out.Weights[posespace.SpaceSwingTwist][i]), 1e-9)
	}
}

// TestSingleSampleSpaceIsInert checks that a space with one sample contributes nothing.
func TestSingleSampleSpaceIsInert(t *testing.T) {
	base := []posespace.Sample{
		{Scalars: []float64{0}, OutputScalars: []float64{1}, Space: posespace.SpaceSwing},
		{Scalars: []float64{1}, OutputScalars: []float64{4}, Space: posespace.SpaceSwing},
	}
	withLone := append(append([]posespace.Sample(nil), base...),
		posespace.Sample{Scalars: []float64{0.5}, OutputScalars: []float64{100}, Space: posespace.SpaceTwist})

	a, b := posespace.New(), posespace.New()
	require.NoError(t, a.SetSamples(base))
	require.NoError(t, b.SetSamples(withLone))

	in := posespace.Input{Scalars: []float64{0.25}}
	outA, err := a.Evaluate(in)
	require.NoError(t, err)
	outB, err := b.Evaluate(in)
	require.NoError(t, err)
	assert.InDelta(t, outA.Scalars[0], outB.Scalars[0], tol)
	assert.NotContains(t, outB.Weights, posespace.SpaceTwist)

	summary, err := b.Summary()
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.True(t, summary[posespace.SpaceSwing].Fitted)
	assert.Equal(t, 1, summary[posespace.SpaceTwist].Samples)
	assert.False(t, summary[posespace.SpaceTwist].Fitted)
	assert.Equal(t, 0, summary[posespace.SpaceSwingTwist].Samples)
}

// TestZeroWeightFallback fits twist-only samples in swing space, where every distance is 0.
func TestZeroWeightFallback(t *testing.T) {
	var buf bytes.Buffer
	ip := posespace.New(posespace.WithLogger(debugLogger(&buf)))
	require.NoError(t, ip.SetSamples([]posespace.Sample{
		{Quats: []quat.Number{twistX(0)}, OutputQuats: []quat.Number{aboutZ(20)}, Space: posespace.SpaceSwing},
		{Quats: []quat.Number{twistX(90)}, OutputQuats: []quat.Number{aboutZ(40)}, Space: posespace.SpaceSwing},
	}))
	out, err := ip.Evaluate(posespace.Input{Quats: []quat.Number{twistX(30)}})
	require.NoError(t, err)
	assert.Equal(t, rotation.Identity, out.Quats[0])
	assert.Contains(t, buf.String(), "all rotation weights are zero")
}

func TestTwistAxisOption(t *testing.T) {
	samples := []posespace.Sample{
		{Quats: []quat.Number{aboutZ(0)}, OutputScalars: []float64{0}, Space: posespace.SpaceTwist},
		{Quats: []quat.Number{aboutZ(90)}, OutputScalars: []float64{10}, Space: posespace.SpaceTwist},
	}
	in := posespace.Input{Quats: []quat.Number{aboutZ(90)}}

	z := posespace.New(posespace.WithTwistAxis(rotation.AxisZ))
	require.NoError(t, z.SetSamples(samples))
	out, err := z.Evaluate(in)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, out.Scalars[0], tol)

	// About X, a Z rotation is pure swing and twist space sees no distance.
	x := posespace.New()
	require.NoError(t, x.SetSamples(samples))
	out, err = x.Evaluate(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out.Scalars[0], tol)

	assert.Panics(t, func() { posespace.WithTwistAxis(rotation.Axis(9)) })
}

func TestAdaptiveRadiusSummary(t *testing.T) {
	ip := posespace.New()
	var samples []posespace.Sample
	for i, deg := range []float64{0, 10, 90} {
		samples = append(samples, posespace.Sample{
			Quats:         []quat.Number{twistX(deg)},
			OutputScalars: []float64{float64(i)},
			Space:         posespace.SpaceSwingTwist,
		})
	}
	require.NoError(t, ip.SetSamples(samples))
	summary, err := ip.Summary()
	require.NoError(t, err)
	r := summary[posespace.SpaceSwingTwist].SampleRadius
	require.Len(t, r, 3)
	assert.Less(t, r[1], r[2])
}

func TestSetSamplesErrors(t *testing.T) {
	ip := posespace.New()
	good := posespace.Sample{Scalars: []float64{1}, OutputScalars: []float64{1}}

	err := ip.SetSamples([]posespace.Sample{good, {Scalars: []float64{1, 2}, OutputScalars: []float64{1}}})
	require.ErrorIs(t, err, posespace.ErrInconsistentSample)
	assert.Contains(t, err.Error(), "sample 1")

	err = ip.SetSamples([]posespace.Sample{{OutputScalars: []float64{1}}})
	require.ErrorIs(t, err, posespace.ErrNoFeatures)

	bad := good
	bad.Space = posespace.Space(4)
	require.ErrorIs(t, ip.SetSamples([]posespace.Sample{good, bad}), posespace.ErrUnknownSpace)
	assert.Equal(t, 0, ip.SampleCount(), "failed calls keep the previous samples")

	require.NoError(t, ip.SetSamples([]posespace.Sample{good, good}))
	_, err = ip.Evaluate(posespace.Input{})
	require.ErrorIs(t, err, posespace.ErrInputDimension)
}

func TestSetParamsErrors(t *testing.T) {
	ip := posespace.New()
	cases := []struct {
		name string
		p    posespace.Params
		want error
	}{
		{"kernel", posespace.Params{Kernel: kernel.Kind(-1)}, kernel.ErrUnknownKind},
		{"mode", posespace.Params{OutputMode: posespace.OutputMode(3)}, posespace.ErrUnknownOutputMode},
		{"radius", posespace.Params{Radius: math.Inf(1)}, regression.ErrBadRadius},
		{"regularization", posespace.Params{Regularization: -0.5}, regression.ErrBadRegularization},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, ip.SetParams(tc.p), tc.want)
		})
	}
	assert.Equal(t, posespace.DefaultParams(), ip.Params())
}

func TestOutputModeNames(t *testing.T) {
	m, err := posespace.ParseOutputMode("Relative")
	require.NoError(t, err)
	assert.Equal(t, posespace.Relative, m)
	assert.Equal(t, "absolute", posespace.Absolute.String())
	_, err = posespace.ParseOutputMode("additive")
	require.ErrorIs(t, err, posespace.ErrUnknownOutputMode)
}

func TestEmptyInterpolator(t *testing.T) {
	ip := posespace.New()
	out, err := ip.Evaluate(posespace.Input{})
	require.NoError(t, err)
	assert.Empty(t, out.Scalars)
	assert.Empty(t, out.Quats)
}
