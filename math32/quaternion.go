// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatIdentity returns the identity quaternion.
func NewQuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// NewQuatEuler returns a new quaternion from given Euler angles.
func NewQuatEuler(euler Euler) Quat {
	nq := Quat{}
	nq.SetFromEuler(euler)
	return nq
}

// String returns a string representation of the quaternion.
func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// Set sets this quaternion's components.
func (q *Quat) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// IsEqual returns if this quaternion is equal to other.
func (q Quat) IsEqual(other Quat) bool {
	return q.X == other.X && q.Y == other.Y && q.Z == other.Z && q.W == other.W
}

// SetFromEuler sets this quaternion from the specified Euler angles,
// using the rotation order stored in the Euler value.
func (q *Quat) SetFromEuler(e Euler) {
	c1 := Cos(e.X / 2)
	c2 := Cos(e.Y / 2)
	c3 := Cos(e.Z / 2)
	s1 := Sin(e.X / 2)
	s2 := Sin(e.Y / 2)
	s3 := Sin(e.Z / 2)

	switch e.Order {
	case XYZ:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case YXZ:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	case ZXY:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case ZYX:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	case YZX:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case XZY:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	}
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle. The axis must be normalized.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	halfAngle := angle / 2
	s := Sin(halfAngle)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(halfAngle)
}

// ToAxisAngle returns the Vector4 holding axis and angle of this Quaternion
func (q Quat) ToAxisAngle() (Vector3, float32) {
	qn := q.Normalized()
	angle := 2 * Acos(Clamp(qn.W, -1, 1))
	s := Sqrt(1 - qn.W*qn.W)
	if s < 1e-6 {
		return Vec3(1, 0, 0), angle
	}
	return Vec3(qn.X/s, qn.Y/s, qn.Z/s), angle
}

// SetFromRotationMatrix sets this quaternion from the specified rotation matrix,
// which must be a pure rotation (unscaled) in its upper 3x3.
func (q *Quat) SetFromRotationMatrix(m *Matrix4) {
	m11 := m[0]
	m12 := m[4]
	m13 := m[8]
	m21 := m[1]
	m22 := m[5]
	m23 := m[9]
	m31 := m[2]
	m32 := m[6]
	m33 := m[10]
	trace := m11 + m22 + m33

	var s float32
	switch {
	case trace > 0:
		s = 0.5 / Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s = 2.0 * Sqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s = 2.0 * Sqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s = 2.0 * Sqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}

// SetFromUnitVectors sets this quaternion to the rotation from vector vFrom to vTo.
// The vectors must be normalized.
func (q *Quat) SetFromUnitVectors(vFrom, vTo Vector3) {
	r := vFrom.Dot(vTo) + 1
	if r < 1e-6 {
		// vectors are opposite: pick any orthogonal axis
		r = 0
		if Abs(vFrom.X) > Abs(vFrom.Z) {
			q.Set(-vFrom.Y, vFrom.X, 0, r)
		} else {
			q.Set(0, -vFrom.Z, vFrom.Y, r)
		}
	} else {
		c := vFrom.Cross(vTo)
		q.Set(c.X, c.Y, c.Z, r)
	}
	q.Normalize()
}

// SetInverse sets this quaternion to its inverse.
func (q *Quat) SetInverse() {
	q.SetConjugate()
}

// Inverse returns the inverse of this quaternion.
func (q Quat) Inverse() Quat {
	q.SetInverse()
	return q
}

// SetConjugate sets this quaternion to its conjugate.
func (q *Quat) SetConjugate() {
	q.X *= -1
	q.Y *= -1
	q.Z *= -1
}

// Conjugate returns the conjugate of this quaternion.
func (q Quat) Conjugate() Quat {
	q.SetConjugate()
	return q
}

// Dot returns the dot products of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSq returns this quanternion's length squared
func (q Quat) LengthSq() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion.
// A zero quaternion becomes the identity.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

// Normalized returns a normalized version of this quaternion
func (q Quat) Normalized() Quat {
	q.Normalize()
	return q
}

// Mul returns the product of this quaternion and other (this * other).
func (q Quat) Mul(other Quat) Quat {
	return MulQuats(q, other)
}

// SetMul sets this quaternion to the multiplication of itself by other.
func (q *Quat) SetMul(other Quat) {
	*q = MulQuats(*q, other)
}

// SetPremul sets this quaternion to the multiplication of other by itself (other * this).
func (q *Quat) SetPremul(other Quat) {
	*q = MulQuats(other, *q)
}

// MulQuats returns the product of a and b (a * b).
func MulQuats(a, b Quat) Quat {
	return Quat{
		X: a.X*b.W + a.W*b.X + a.Y*b.Z - a.Z*b.Y,
		Y: a.Y*b.W + a.W*b.Y + a.Z*b.X - a.X*b.Z,
		Z: a.Z*b.W + a.W*b.Z + a.X*b.Y - a.Y*b.X,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// AngleTo returns the angle in radians between this quaternion and other.
func (q Quat) AngleTo(other Quat) float32 {
	return 2 * Acos(Abs(Clamp(q.Dot(other), -1, 1)))
}

// RotateTowards rotates this quaternion towards other by at most the given
// angular step (radians).
func (q *Quat) RotateTowards(other Quat, step float32) {
	angle := q.AngleTo(other)
	if angle == 0 {
		return
	}
	t := Min(1, step/angle)
	q.Slerp(other, t)
}

// Slerp sets this quaternion to another quaternion which is the
// spherically linear interpolation from this quaternion to other using t.
func (q *Quat) Slerp(other Quat, t float32) {
	if t == 0 {
		return
	}
	if t == 1 {
		*q = other
		return
	}

	x := q.X
	y := q.Y
	z := q.Z
	w := q.W

	cosHalfTheta := w*other.W + x*other.X + y*other.Y + z*other.Z
	if cosHalfTheta < 0 {
		q.W = -other.W
		q.X = -other.X
		q.Y = -other.Y
		q.Z = -other.Z
		cosHalfTheta = -cosHalfTheta
	} else {
		*q = other
	}

	if cosHalfTheta >= 1.0 {
		q.Set(x, y, z, w)
		return
	}

	sqrSinHalfTheta := 1 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta <= 1e-7 {
		s := 1 - t
		q.W = s*w + t*q.W
		q.X = s*x + t*q.X
		q.Y = s*y + t*q.Y
		q.Z = s*z + t*q.Z
		q.Normalize()
		return
	}

	sinHalfTheta := Sqrt(sqrSinHalfTheta)
	halfTheta := Atan2(sinHalfTheta, cosHalfTheta)
	ratioA := Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := Sin(t*halfTheta) / sinHalfTheta

	q.W = w*ratioA + q.W*ratioB
	q.X = x*ratioA + q.X*ratioB
	q.Y = y*ratioA + q.Y*ratioB
	q.Z = z*ratioA + q.Z*ratioB
}
