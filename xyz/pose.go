// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/math32"
)

// Pose contains the full specification of the position and orientation
// of a node, along with the matrices computed from it.
// The rotation is stored canonically as a quaternion; the Euler angle
// view of it is derived lazily from the quaternion when read, so the two
// can never disagree.
type Pose struct {

	// Pos is the position of the node relative to its parent.
	Pos math32.Vector3

	// Scale is the scale of the node along each local axis.
	Scale math32.Vector3

	// Quat is the rotation of the node relative to its parent.
	Quat math32.Quat

	// EulerOrder is the axis order used when reading or writing
	// the rotation as Euler angles.
	EulerOrder math32.EulerOrders

	// Matrix is the local transform, composed from Pos, Quat, and Scale.
	Matrix math32.Matrix4 `display:"-"`

	// WorldMatrix is the parent's WorldMatrix times Matrix.
	WorldMatrix math32.Matrix4 `display:"-"`

	// euler caches the Euler angles derived from eulerQuat.
	euler math32.Euler

	// eulerQuat is the rotation that euler was derived from.
	eulerQuat math32.Quat
}

// Defaults sets an identity pose: zero position, unit scale,
// no rotation, and identity matrices.
func (ps *Pose) Defaults() {
	ps.Pos.SetZero()
	ps.Scale.Set(1, 1, 1)
	ps.Quat.SetIdentity()
	ps.Matrix.SetIdentity()
	ps.WorldMatrix.SetIdentity()
	ps.euler = math32.Euler{Order: ps.EulerOrder}
	ps.eulerQuat = ps.Quat
}

// String returns a summary of the local position, rotation, and scale.
func (ps *Pose) String() string {
	return "Pos: " + ps.Pos.String() + "; Quat: " + ps.Quat.String() + "; Scale: " + ps.Scale.String()
}

// UpdateMatrix composes the local Matrix from Pos, Quat, and Scale.
func (ps *Pose) UpdateMatrix() {
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix sets WorldMatrix to parent times Matrix,
// or to Matrix when there is no parent.
func (ps *Pose) UpdateWorldMatrix(parent *math32.Matrix4) {
	if parent == nil {
		ps.WorldMatrix = ps.Matrix
	} else {
		ps.WorldMatrix.MulMatrices(parent, &ps.Matrix)
	}
}

// SetMatrix sets the local Matrix and decomposes it into
// Pos, Quat, and Scale.
func (ps *Pose) SetMatrix(m *math32.Matrix4) {
	ps.Matrix = *m
	ps.Pos, ps.Quat, ps.Scale = ps.Matrix.Decompose()
}

// Euler returns the rotation as Euler angles in [Pose.EulerOrder].
// The result is recomputed only when the quaternion or order has
// changed since the last call.
func (ps *Pose) Euler() math32.Euler {
	if ps.eulerQuat != ps.Quat || ps.euler.Order != ps.EulerOrder {
		ps.euler.SetFromQuat(ps.Quat, ps.EulerOrder)
		ps.eulerQuat = ps.Quat
	}
	return ps.euler
}

// SetEuler sets the rotation from the given Euler angles, which also
// sets [Pose.EulerOrder] to their order.
func (ps *Pose) SetEuler(e math32.Euler) {
	ps.EulerOrder = e.Order
	ps.Quat.SetFromEuler(e)
	ps.euler = e
	ps.eulerQuat = ps.Quat
}

// SetEulerRotation sets the rotation in Euler angles (degrees),
// in the current [Pose.EulerOrder].
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.SetEulerRotationRad(math32.DegToRad(x), math32.DegToRad(y), math32.DegToRad(z))
}

// SetEulerRotationRad sets the rotation in Euler angles (radians),
// in the current [Pose.EulerOrder].
func (ps *Pose) SetEulerRotationRad(x, y, z float32) {
	ps.SetEuler(math32.NewEuler(x, y, z, ps.EulerOrder))
}

// EulerRotation returns the current rotation as Euler angles in degrees.
func (ps *Pose) EulerRotation() math32.Vector3 {
	return ps.Euler().Vector3().MulScalar(math32.RadToDegFactor)
}

// SetAxisRotation sets the rotation from the given axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.SetAxisRotationRad(x, y, z, math32.DegToRad(angle))
}

// SetAxisRotationRad sets the rotation from the given axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z).Normal(), angle)
}

// RotateOnAxis rotates around the given local axis by the given angle in degrees.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	ps.RotateOnAxisRad(x, y, z, math32.DegToRad(angle))
}

// RotateOnAxisRad rotates around the given local axis by the given angle in radians.
// The axis is normalized.
func (ps *Pose) RotateOnAxisRad(x, y, z, angle float32) {
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z).Normal(), angle))
}

// RotateOnWorldAxisRad rotates around the given axis expressed in the
// parent's frame by the given angle in radians. It assumes the parent
// has no rotation of its own.
func (ps *Pose) RotateOnWorldAxisRad(x, y, z, angle float32) {
	ps.Quat.SetPremul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z).Normal(), angle))
}

// MoveOnAxis moves (translates) the specified distance on the specified
// local axis, relative to the current rotation orientation.
func (ps *Pose) MoveOnAxis(x, y, z, dist float32) {
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulQuat(ps.Quat).MulScalar(dist))
}

// MoveOnAxisAbs moves (translates) the specified distance on the specified
// axis in the parent's frame, ignoring the current rotation.
func (ps *Pose) MoveOnAxisAbs(x, y, z, dist float32) {
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulScalar(dist))
}

// ApplyMatrix4 premultiplies the local Matrix by m and decomposes the
// result back into Pos, Quat, and Scale. Matrix must be current.
func (ps *Pose) ApplyMatrix4(m *math32.Matrix4) {
	ps.Matrix.SetPremul(m)
	ps.Pos, ps.Quat, ps.Scale = ps.Matrix.Decompose()
}

// WorldPos returns the world position from WorldMatrix.
func (ps *Pose) WorldPos() math32.Vector3 {
	return ps.WorldMatrix.Pos()
}

// WorldQuat returns the world rotation quaternion from WorldMatrix.
func (ps *Pose) WorldQuat() math32.Quat {
	_, q, _ := ps.WorldMatrix.Decompose()
	return q
}

// WorldScale returns the world scale from WorldMatrix.
func (ps *Pose) WorldScale() math32.Vector3 {
	_, _, s := ps.WorldMatrix.Decompose()
	return s
}
