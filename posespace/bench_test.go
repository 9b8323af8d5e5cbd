// SPDX-License-Identifier: MIT
package posespace_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/posespace/kernel"
	"github.com/katalvlaran/posespace/posespace"
	"github.com/katalvlaran/posespace/regression"
	"github.com/katalvlaran/posespace/rotation"
)

var sinkOutput posespace.Output

func benchSamples(n int) []posespace.Sample {
	rng := rand.New(rand.NewSource(11))
	samples := make([]posespace.Sample, n)
	for i := range samples {
		samples[i] = posespace.Sample{
			Scalars:       []float64{rng.Float64()},
			Quats:         []quat.Number{rotation.FromAxisAngle(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()*2)},
			OutputScalars: []float64{rng.Float64(), rng.Float64()},
			OutputQuats:   []quat.Number{rotation.FromAxisAngle(0, 0, 1, rng.Float64())},
			Space:         regression.Spaces[i%len(regression.Spaces)],
		}
	}

	return samples
}

func BenchmarkFit48(b *testing.B) {
	ip := posespace.New()
	if err := ip.SetSamples(benchSamples(48)); err != nil {
		b.Fatal(err)
	}
	_ = ip.SetParams(posespace.Params{Kernel: kernel.Gaussian, Radius: 1, OutputMode: posespace.Relative})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ip.Fit(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate48(b *testing.B) {
	ip := posespace.New()
	if err := ip.SetSamples(benchSamples(48)); err != nil {
		b.Fatal(err)
	}
	in := posespace.Input{
		Scalars: []float64{0.5},
		Quats:   []quat.Number{rotation.FromAxisAngle(0, 1, 1, 0.4)},
	}
	if _, err := ip.Evaluate(in); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkOutput, _ = ip.Evaluate(in)
	}
}
