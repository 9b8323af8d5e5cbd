// SPDX-License-Identifier: MIT

// Package kernel implements the radial basis functions applied to distance
// matrices before regression.
//
// Families (index = Kind value):
//
//	0 Linear               φ(x) = x
//	1 Gaussian             φ(x) = exp(−x² / (2·(0.4r)²))
//	2 ThinPlate            φ(x) = v²·ln v  (v = x/r > 0), else v
//	3 MultiQuadric         φ(x) = √(x² + r²)
//	4 InverseMultiQuadric  φ(x) = 1 / √(x² + r²)
//	5 WendlandC2           φ(x) = (1−v)⁴·(4v+1) for v < 1, else 0
//
// A radius ≤ 0 is floored to MinRadius instead of being rejected.
// Application is elementwise and in place; Linear leaves input untouched.
package kernel
