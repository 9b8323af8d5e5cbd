// Package posespace is a pose-space deformation toolkit: it learns how a rig's
// outputs (blend-shape values, helper-joint rotations) should follow its
// driver joints from a handful of example poses, and interpolates them for any
// live pose with radial basis functions.
//
// 🚀 What is inside?
//
//	• rotation/  – quaternion swing/twist decomposition, distances, weighted averaging
//	• kernel/    – RBF kernels (linear, gaussian, thin plate, multiquadric, Wendland C2)
//	• matrix/    – row-major Dense, ridge normal equations, SVD pseudo-inverse
//	• regression/ – per-space RBF solver: feature matrix, adaptive radius, theta fit, solve
//	• posespace/ – Interpolator: buckets samples by space, relative outputs, evaluation
//	• rigfile/   – YAML rig documents: load, validate, build an Interpolator
//	• cmd/posespace – CLI to evaluate and inspect rig files
//
// ✨ Quick start:
//
//	ip := posespace.New()
//	_ = ip.SetSamples(samples)
//	out, err := ip.Evaluate(posespace.Input{Quats: live})
//
// Every sample belongs to one Space (swing, twist or both); each space is fitted
// independently and the results are blended. Fitting is lazy: changing samples
// or params marks the Interpolator dirty and the next Evaluate refits.
//
//	go get github.com/katalvlaran/posespace
package posespace
