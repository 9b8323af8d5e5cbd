// SPDX-License-Identifier: MIT

// Package rotation provides the rotational metric used by pose-space
// interpolation: swing/twist decomposition, geodesic quaternion distance and
// weighted quaternion averaging.
//
// 🚀 What is swing/twist?
//
//	Any rotation q can be split about a twist axis into
//	  q = twist · swing
//	where twist spins around the axis and swing tilts the axis itself.
//	Comparing the two parts separately lets a rig react to "the arm lifted"
//	independently from "the arm rolled".
//
// ✨ Key features:
//   - Decompose / SwingTwistDistance about a configurable Axis (X by default)
//   - Distance in [0,1]: acos(2·dot²−1)/π, sign-insensitive (q ≡ −q)
//   - WeightedAverage via the dominant eigenvector of Σ wᵢ² qᵢqᵢᵀ
//   - small helpers: FromAxisAngle, Delta, Normalize, ToEulerXYZ
//
// Quaternions are gonum's quat.Number with Real as the scalar part.
// Every function is pure and safe for concurrent use.
package rotation
