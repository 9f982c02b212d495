// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// EulerOrders are the orders in which the three Euler angle
// rotations are applied. XYZ means a rotation about X, then Y,
// then Z, each about the axes of the rotated frame.
type EulerOrders int32 //enums:enum

const (
	XYZ EulerOrders = iota
	YXZ
	ZXY
	ZYX
	YZX
	XZY
)

// eulerLockThreshold is the |sin| of the middle angle above which
// the decomposition is treated as gimbal locked.
const eulerLockThreshold = 0.9999999

// Euler is a set of three rotation angles in radians about
// the X, Y and Z axes, applied in the given Order.
type Euler struct {
	X     float32
	Y     float32
	Z     float32
	Order EulerOrders
}

// NewEuler returns a new Euler with the given angles and order.
func NewEuler(x, y, z float32, order EulerOrders) Euler {
	return Euler{X: x, Y: y, Z: z, Order: order}
}

// String returns a string representation of the angles and order.
func (e Euler) String() string {
	return fmt.Sprintf("(%g, %g, %g, %s)", e.X, e.Y, e.Z, e.Order)
}

// Vector3 returns the angles as a vector.
func (e Euler) Vector3() Vector3 {
	return Vec3(e.X, e.Y, e.Z)
}

// IsEqual returns if this Euler is equal to other, including order.
func (e Euler) IsEqual(other Euler) bool {
	return e.X == other.X && e.Y == other.Y && e.Z == other.Z && e.Order == other.Order
}

// Quat returns the quaternion for this rotation.
func (e Euler) Quat() Quat {
	return NewQuatEuler(e)
}

// SetFromQuat sets the angles from the given quaternion using the given order.
func (e *Euler) SetFromQuat(q Quat, order EulerOrders) {
	m := Matrix4{}
	m.SetRotationFromQuat(q)
	e.SetFromRotationMatrix(&m, order)
}

// SetFromRotationMatrix sets the angles from the upper 3x3 of the given
// matrix, which must be a pure rotation (unscaled), using the given order.
// In gimbal lock the third angle is set to zero.
func (e *Euler) SetFromRotationMatrix(m *Matrix4, order EulerOrders) {
	m11 := m[0]
	m12 := m[4]
	m13 := m[8]
	m21 := m[1]
	m22 := m[5]
	m23 := m[9]
	m31 := m[2]
	m32 := m[6]
	m33 := m[10]

	e.Order = order
	switch order {
	case XYZ:
		e.Y = Asin(Clamp(m13, -1, 1))
		if Abs(m13) < eulerLockThreshold {
			e.X = Atan2(-m23, m33)
			e.Z = Atan2(-m12, m11)
		} else {
			e.X = Atan2(m32, m22)
			e.Z = 0
		}
	case YXZ:
		e.X = Asin(-Clamp(m23, -1, 1))
		if Abs(m23) < eulerLockThreshold {
			e.Y = Atan2(m13, m33)
			e.Z = Atan2(m21, m22)
		} else {
			e.Y = Atan2(-m31, m11)
			e.Z = 0
		}
	case ZXY:
		e.X = Asin(Clamp(m32, -1, 1))
		if Abs(m32) < eulerLockThreshold {
			e.Y = Atan2(-m31, m33)
			e.Z = Atan2(-m12, m22)
		} else {
			e.Y = 0
			e.Z = Atan2(m21, m11)
		}
	case ZYX:
		e.Y = Asin(-Clamp(m31, -1, 1))
		if Abs(m31) < eulerLockThreshold {
			e.X = Atan2(m32, m33)
			e.Z = Atan2(m21, m11)
		} else {
			e.X = 0
			e.Z = Atan2(-m12, m22)
		}
	case YZX:
		e.Z = Asin(Clamp(m21, -1, 1))
		if Abs(m21) < eulerLockThreshold {
			e.X = Atan2(-m23, m22)
			e.Y = Atan2(-m31, m11)
		} else {
			e.X = 0
			e.Y = Atan2(m13, m33)
		}
	case XZY:
		e.Z = Asin(-Clamp(m12, -1, 1))
		if Abs(m12) < eulerLockThreshold {
			e.X = Atan2(m32, m22)
			e.Y = Atan2(m13, m11)
		} else {
			e.X = Atan2(-m23, m33)
			e.Y = 0
		}
	}
}

// Reorder returns the same rotation expressed in the given order.
// Some precision is lost in the conversion.
func (e Euler) Reorder(order EulerOrders) Euler {
	r := Euler{}
	r.SetFromQuat(e.Quat(), order)
	return r
}
