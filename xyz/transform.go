// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
)

// SetPos sets the [Pose.Pos] position of the node.
func (nb *NodeBase) SetPos(x, y, z float32) *NodeBase {
	nb.Pose.Pos.Set(x, y, z)
	return nb
}

// SetScale sets the [Pose.Scale] scale of the node.
func (nb *NodeBase) SetScale(x, y, z float32) *NodeBase {
	nb.Pose.Scale.Set(x, y, z)
	return nb
}

// SetAxisRotation sets the [Pose.Quat] rotation of the node
// from the given axis and angle in degrees.
func (nb *NodeBase) SetAxisRotation(x, y, z, angle float32) *NodeBase {
	nb.Pose.SetAxisRotation(x, y, z, angle)
	return nb
}

// SetEulerRotation sets the [Pose.Quat] rotation of the node
// from the given Euler angles in degrees.
func (nb *NodeBase) SetEulerRotation(x, y, z float32) *NodeBase {
	nb.Pose.SetEulerRotation(x, y, z)
	return nb
}

// SetRotationFromAxisAngle sets the rotation from a normalized axis
// and an angle in radians.
func (nb *NodeBase) SetRotationFromAxisAngle(axis math32.Vector3, angle float32) {
	nb.Pose.Quat.SetFromAxisAngle(axis, angle)
}

// SetRotationFromEuler sets the rotation from Euler angles in radians.
func (nb *NodeBase) SetRotationFromEuler(e math32.Euler) {
	nb.Pose.SetEuler(e)
}

// SetRotationFromMatrix sets the rotation from the upper 3x3 of m,
// which must be a pure (unscaled) rotation.
func (nb *NodeBase) SetRotationFromMatrix(m *math32.Matrix4) {
	nb.Pose.Quat.SetFromRotationMatrix(m)
}

// SetRotationFromQuat sets the rotation from the given normalized quaternion.
func (nb *NodeBase) SetRotationFromQuat(q math32.Quat) {
	nb.Pose.Quat = q
}

// ApplyMatrix4 transforms the node's local matrix by m and updates
// the pose from the result.
func (nb *NodeBase) ApplyMatrix4(m *math32.Matrix4) {
	if nb.MatrixAutoUpdate {
		nb.Pose.UpdateMatrix()
	}
	nb.Pose.ApplyMatrix4(m)
	nb.MatrixWorldNeedsUpdate = true
}

// ApplyQuat rotates the node by q, applied after the current rotation.
func (nb *NodeBase) ApplyQuat(q math32.Quat) {
	nb.Pose.Quat.SetPremul(q)
}

// RotateOnAxis rotates the node around the given normalized axis in
// local space by the given angle in radians.
func (nb *NodeBase) RotateOnAxis(axis math32.Vector3, angle float32) {
	nb.Pose.Quat.SetMul(math32.NewQuatAxisAngle(axis, angle))
}

// RotateOnWorldAxis rotates the node around the given normalized axis
// in world space by the given angle in radians. It assumes that no
// ancestor is rotated.
func (nb *NodeBase) RotateOnWorldAxis(axis math32.Vector3, angle float32) {
	nb.Pose.Quat.SetPremul(math32.NewQuatAxisAngle(axis, angle))
}

// RotateX rotates the node around its local X axis by angle radians.
func (nb *NodeBase) RotateX(angle float32) {
	nb.RotateOnAxis(math32.Vec3(1, 0, 0), angle)
}

// RotateY rotates the node around its local Y axis by angle radians.
func (nb *NodeBase) RotateY(angle float32) {
	nb.RotateOnAxis(math32.Vec3(0, 1, 0), angle)
}

// RotateZ rotates the node around its local Z axis by angle radians.
func (nb *NodeBase) RotateZ(angle float32) {
	nb.RotateOnAxis(math32.Vec3(0, 0, 1), angle)
}

// TranslateOnAxis moves the node by dist along the given normalized axis
// in local space.
func (nb *NodeBase) TranslateOnAxis(axis math32.Vector3, dist float32) {
	nb.Pose.Pos.SetAdd(axis.MulQuat(nb.Pose.Quat).MulScalar(dist))
}

// TranslateX moves the node along its local X axis.
func (nb *NodeBase) TranslateX(dist float32) {
	nb.TranslateOnAxis(math32.Vec3(1, 0, 0), dist)
}

// TranslateY moves the node along its local Y axis.
func (nb *NodeBase) TranslateY(dist float32) {
	nb.TranslateOnAxis(math32.Vec3(0, 1, 0), dist)
}

// TranslateZ moves the node along its local Z axis.
func (nb *NodeBase) TranslateZ(dist float32) {
	nb.TranslateOnAxis(math32.Vec3(0, 0, 1), dist)
}

// LocalToWorld converts v from this node's local space to world space,
// using the current world matrix.
func (nb *NodeBase) LocalToWorld(v math32.Vector3) math32.Vector3 {
	return v.MulMatrix4(&nb.Pose.WorldMatrix)
}

// WorldToLocal converts v from world space to this node's local space,
// using the current world matrix. A singular world matrix maps every
// point to the origin.
func (nb *NodeBase) WorldToLocal(v math32.Vector3) math32.Vector3 {
	var inv math32.Matrix4
	errors.Log(inv.SetInverse(&nb.Pose.WorldMatrix))
	return v.MulMatrix4(&inv)
}

// WorldPosition returns the position of the node in world space,
// first updating the world matrices of the node and its ancestors.
func (nb *NodeBase) WorldPosition() math32.Vector3 {
	nb.asThis().UpdateWorldMatrix(true, false)
	return nb.Pose.WorldPos()
}

// WorldQuat returns the rotation of the node in world space,
// first updating the world matrices of the node and its ancestors.
func (nb *NodeBase) WorldQuat() math32.Quat {
	nb.asThis().UpdateWorldMatrix(true, false)
	return nb.Pose.WorldQuat()
}

// WorldScale returns the scale of the node in world space,
// first updating the world matrices of the node and its ancestors.
func (nb *NodeBase) WorldScale() math32.Vector3 {
	nb.asThis().UpdateWorldMatrix(true, false)
	return nb.Pose.WorldScale()
}

// WorldDirection returns the normalized direction of the node's positive
// Z axis in world space. Cameras look down their negative Z axis,
// so for a camera the result is negated to give the view direction.
func (nb *NodeBase) WorldDirection() math32.Vector3 {
	ni := nb.asThis()
	ni.UpdateWorldMatrix(true, false)
	var dir math32.Vector3
	dir.SetFromMatrixCol(&nb.Pose.WorldMatrix, 2)
	dir.SetNormal()
	if ni.IsCamera() {
		dir = dir.Negate()
	}
	return dir
}

// LookAt rotates the node so that it faces the given point in world space,
// using [NodeBase.Up] as the roll reference. Cameras and lights point
// their negative Z axis at the target; all other nodes point their
// positive Z axis at it. The position is unchanged, and the rotation of
// the parent is taken into account.
func (nb *NodeBase) LookAt(target math32.Vector3) {
	ni := nb.asThis()
	ni.UpdateWorldMatrix(true, false)
	pos := nb.Pose.WorldPos()

	var m math32.Matrix4
	if ni.IsCamera() || ni.IsLight() {
		m.SetLookAt(pos, target, nb.Up)
	} else {
		m.SetLookAt(target, pos, nb.Up)
	}
	nb.Pose.Quat.SetFromRotationMatrix(&m)

	if _, pb := nb.parentNode(); pb != nil {
		m.ExtractRotation(&pb.Pose.WorldMatrix)
		var pq math32.Quat
		pq.SetFromRotationMatrix(&m)
		nb.Pose.Quat.SetPremul(pq.Inverse())
	}
}

// Attach adds the given node as a child of this node while keeping its
// world transform unchanged, adjusting its local pose to compensate
// for the change of parent.
func (nb *NodeBase) Attach(child Node) error {
	if err := nb.CanAddChild(child); err != nil {
		return errors.Log(err)
	}
	nb.asThis().UpdateWorldMatrix(true, false)

	var m math32.Matrix4
	if err := m.SetInverse(&nb.Pose.WorldMatrix); err != nil {
		return errors.Log(err)
	}
	cb := child.AsNode()
	if pi, pb := cb.parentNode(); pi != nil {
		pi.UpdateWorldMatrix(true, false)
		m.SetMul(&pb.Pose.WorldMatrix)
	}
	cb.ApplyMatrix4(&m)
	if err := nb.AddChild(child); err != nil {
		return err
	}
	child.UpdateWorldMatrix(false, true)
	return nil
}

// RemoveFromParent removes this node from its parent, if any,
// without destroying it.
func (nb *NodeBase) RemoveFromParent() {
	if nb.Parent != nil {
		nb.Parent.AsTree().RemoveChild(nb.This)
	}
}

// Clear removes all children of this node without destroying them.
func (nb *NodeBase) Clear() {
	nb.RemoveChildren()
}

// Traverse calls fun on this node and all of its xyz descendants
// in depth-first pre-order.
func (nb *NodeBase) Traverse(fun func(n Node)) {
	nb.WalkDown(func(k tree.Node) bool {
		ni, _ := AsNode(k)
		if ni == nil {
			return tree.Break
		}
		fun(ni)
		return tree.Continue
	})
}

// TraverseVisible is like [NodeBase.Traverse] but does not visit
// invisible nodes or any of their descendants.
func (nb *NodeBase) TraverseVisible(fun func(n Node)) {
	nb.WalkDown(func(k tree.Node) bool {
		ni, kb := AsNode(k)
		if ni == nil || !kb.Visible {
			return tree.Break
		}
		fun(ni)
		return tree.Continue
	})
}

// TraverseAncestors calls fun on each ancestor of this node,
// starting with the parent.
func (nb *NodeBase) TraverseAncestors(fun func(n Node)) {
	nb.WalkUpParent(func(k tree.Node) bool {
		ni, _ := AsNode(k)
		if ni == nil {
			return tree.Break
		}
		fun(ni)
		return tree.Continue
	})
}

// NodeByName returns the first node in this subtree (including this
// node) with the given name, or nil if there is none.
func (nb *NodeBase) NodeByName(name string) Node {
	return nb.findNode(func(kb *NodeBase) bool { return kb.Name == name })
}

// NodeByID returns the node in this subtree (including this node)
// with the given [NodeBase.ID], or nil if there is none.
func (nb *NodeBase) NodeByID(id int64) Node {
	return nb.findNode(func(kb *NodeBase) bool { return kb.ID == id })
}

func (nb *NodeBase) findNode(match func(kb *NodeBase) bool) Node {
	var found Node
	nb.WalkDown(func(k tree.Node) bool {
		if found != nil {
			return tree.Break
		}
		ni, kb := AsNode(k)
		if ni == nil {
			return tree.Break
		}
		if match(kb) {
			found = ni
			return tree.Break
		}
		return tree.Continue
	})
	return found
}
