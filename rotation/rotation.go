// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Identity is the unit quaternion with no rotation.
var Identity = quat.Number{Real: 1}

// Dot returns the 4D inner product of a and b.
func Dot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// Normalize returns q scaled to unit length, or Identity when |q| is 0.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) {
		return Identity
	}

	return quat.Scale(1/n, q)
}

// Decompose splits q into swing and twist about axis so that q = twist · swing.
//
// Implementation:
//   - Stage 1: twist is the normalised projection (w, axis component); a
//     zero-length projection (a 180° swing) yields the identity twist.
//   - Stage 2: swing = twist⁻¹ · q (the conjugate serves as the inverse of a
//     unit quaternion).
func Decompose(q quat.Number, axis Axis) (swing, twist quat.Number) {
	p := axis.pure(q.Real, axis.component(q))
	if n := quat.Abs(p); n > 0 {
		twist = quat.Scale(1/n, p)
	} else {
		twist = Identity
	}
	swing = quat.Mul(quat.Conj(twist), q)

	return swing, twist
}

// Distance returns the normalised geodesic angle between a and b in [0,1]:
// acos(2·dot²−1)/π with dot clamped to [−1,1]. q and −q are at distance 0.
func Distance(a, b quat.Number) float64 {
	d := Dot(a, b)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}

	return math.Acos(2*d*d-1) / math.Pi
}

// SwingTwistDistance decomposes a and b about axis and returns the distance
// between their swings and between their twists.
func SwingTwistDistance(a, b quat.Number, axis Axis) (swing, twist float64) {
	sa, ta := Decompose(a, axis)
	sb, tb := Decompose(b, axis)

	return Distance(sa, sb), Distance(ta, tb)
}

// FromAxisAngle builds the unit quaternion rotating by angle radians about
// (x, y, z). A zero axis yields Identity.
func FromAxisAngle(x, y, z, angle float64) quat.Number {
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return Identity
	}
	s, c := math.Sincos(angle / 2)
	s /= n

	return quat.Number{Real: c, Imag: x * s, Jmag: y * s, Kmag: z * s}
}

// Delta expresses live relative to rest: live · rest⁻¹.
// Both inputs are normalised first.
func Delta(live, rest quat.Number) quat.Number {
	return quat.Mul(Normalize(live), quat.Conj(Normalize(rest)))
}

// ToEulerXYZ converts q to XYZ-order Euler angles in degrees, where the
// rotation applies X first, then Y, then Z (q = qz·qy·qx).
func ToEulerXYZ(q quat.Number) (x, y, z float64) {
	q = Normalize(q)
	w, qx, qy, qz := q.Real, q.Imag, q.Jmag, q.Kmag

	x = math.Atan2(2*(w*qx+qy*qz), 1-2*(qx*qx+qy*qy))
	sinY := 2 * (w*qy - qz*qx)
	if sinY > 1 {
		sinY = 1
	} else if sinY < -1 {
		sinY = -1
	}
	y = math.Asin(sinY)
	z = math.Atan2(2*(w*qz+qx*qy), 1-2*(qy*qy+qz*qz))

	const toDeg = 180 / math.Pi

	return x * toDeg, y * toDeg, z * toDeg
}
