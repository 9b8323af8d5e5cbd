// SPDX-License-Identifier: MIT

// Package posespace blends example poses into live outputs.
//
// 🚀 What is a pose-space interpolator?
//
//	You give it samples: "when the shoulder is lifted 90° and the slider
//	reads 0.3, the corrective shape should be 1.0 and the helper joint
//	should rotate like this". For any live pose it returns outputs that
//	reproduce the samples exactly and blend smoothly between them.
//
// ✨ How it works:
//   - Samples are bucketed by their Space (swing, twist, swing+twist); each
//     bucket is fitted by its own regression.Solver.
//   - Scalar outputs of the three solvers are summed.
//   - Rotation outputs of all solvers are pooled into one weighted
//     quaternion average per output slot.
//   - In Relative mode the first sample (bucket order) defines the neutral
//     pose: outputs are stored as deltas from it and re-applied on the way out.
//   - A dirty flag gates refits: SetSamples / SetParams mark it, Evaluate
//     refits only when it is set. Live inputs never force a refit.
//
// ⚙️ Usage:
//
//	ip := posespace.New(posespace.WithLogger(log))
//	_ = ip.SetParams(posespace.Params{Kernel: kernel.Gaussian, Radius: 1, OutputMode: posespace.Relative})
//	_ = ip.SetSamples(samples)
//	out, err := ip.Evaluate(posespace.Input{Quats: []quat.Number{rotation.Delta(live, rest)}})
//
// Input rotations (sample and live) must already be rest-relative; see
// rotation.Delta.
//
// An Interpolator is not safe for concurrent use.
package posespace
