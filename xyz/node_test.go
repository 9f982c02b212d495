// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/scenegraph/base/tolassert"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTol = float32(1.0e-4)

func assertVector3(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, testTol)
	tolassert.EqualTol(t, expected.Y, actual.Y, testTol)
	tolassert.EqualTol(t, expected.Z, actual.Z, testTol)
}

func assertMatrix4(t *testing.T, expected, actual *math32.Matrix4) {
	t.Helper()
	tolassert.EqualTolSlice(t, expected[:], actual[:], testTol)
}

// newChain returns a root group with a chain of three nested groups
// under it, each with a distinct pose.
func newChain() (root *Group, chain []*Group) {
	root = NewGroup()
	root.SetPos(1, 2, 3).SetEulerRotation(10, 20, 30)
	a := NewGroup(root)
	a.SetPos(-1, 0, 2).SetScale(2, 2, 2).SetAxisRotation(0, 1, 0, 45)
	b := NewGroup(a)
	b.SetPos(0, 3, 0).SetEulerRotation(-30, 0, 60)
	c := NewGroup(b)
	c.SetPos(0.5, 0.5, 0.5).SetScale(1, 0.5, 1)
	return root, []*Group{a, b, c}
}

func TestUpdateMatrixWorldChain(t *testing.T) {
	root, chain := newChain()
	root.UpdateMatrixWorld(false)

	want := root.Pose.WorldMatrix
	assertMatrix4(t, &root.Pose.Matrix, &want)
	for _, g := range chain {
		want.SetMul(&g.Pose.Matrix)
		assertMatrix4(t, &want, &g.Pose.WorldMatrix)
		assert.False(t, g.MatrixWorldNeedsUpdate)
	}
}

func TestUpdateMatrixWorldIdempotent(t *testing.T) {
	root, chain := newChain()
	root.UpdateMatrixWorld(false)
	first := chain[2].Pose.WorldMatrix
	root.UpdateMatrixWorld(false)
	assert.Equal(t, first, chain[2].Pose.WorldMatrix)
}

func TestUpdateMatrixWorldRotatedParent(t *testing.T) {
	root := NewGroup()
	child := NewGroup(root)
	child.SetPos(1, 0, 0)
	root.UpdateMatrixWorld(false)
	assertVector3(t, math32.Vec3(1, 0, 0), child.Pose.WorldPos())

	root.RotateY(math32.Pi / 2)
	root.UpdateMatrixWorld(false)
	assertVector3(t, math32.Vec3(0, 0, -1), child.Pose.WorldPos())
}

func TestUpdateMatrixWorldMovedParent(t *testing.T) {
	root, chain := newChain()
	root.UpdateMatrixWorld(false)
	before := chain[2].Pose.WorldPos()

	root.Pose.Pos.X += 10
	root.UpdateMatrixWorld(false)
	assertVector3(t, before.Add(math32.Vec3(10, 0, 0)), chain[2].Pose.WorldPos())
}

func TestMatrixAutoUpdateOff(t *testing.T) {
	root := NewGroup()
	child := NewGroup(root)
	child.MatrixAutoUpdate = false
	child.SetPos(5, 0, 0)
	root.UpdateMatrixWorld(false)
	assertVector3(t, math32.Vec3(0, 0, 0), child.Pose.WorldPos())

	child.UpdateMatrix()
	assert.True(t, child.MatrixWorldNeedsUpdate)
	root.UpdateMatrixWorld(false)
	assertVector3(t, math32.Vec3(5, 0, 0), child.Pose.WorldPos())
}

func TestMatrixWorldAutoUpdateOff(t *testing.T) {
	root := NewGroup()
	root.MatrixAutoUpdate = false
	child := NewGroup(root)
	child.MatrixWorldAutoUpdate = false
	child.SetPos(2, 0, 0)
	root.UpdateMatrixWorld(false)
	assertVector3(t, math32.Vec3(0, 0, 0), child.Pose.WorldPos())

	// forcing descends regardless of the child setting
	root.UpdateMatrixWorld(true)
	assertVector3(t, math32.Vec3(2, 0, 0), child.Pose.WorldPos())
}

func TestUpdateWorldMatrixParents(t *testing.T) {
	root, chain := newChain()
	root.UpdateMatrixWorld(false)
	want := chain[2].Pose.WorldMatrix

	_, chain2 := newChain()
	chain2[2].UpdateWorldMatrix(true, false)
	assertMatrix4(t, &want, &chain2[2].Pose.WorldMatrix)
}

func TestPoseEulerSync(t *testing.T) {
	gp := NewGroup()
	e := gp.Pose.Euler()
	e.X = 0.5
	gp.Pose.SetEuler(e)
	assertVector3(t, math32.Vec3(0.5, 0, 0), gp.Pose.Euler().Vector3())

	var got math32.Euler
	got.SetFromQuat(gp.Pose.Quat, gp.Pose.EulerOrder)
	assertVector3(t, math32.Vec3(0.5, 0, 0), got.Vector3())

	// the euler view follows direct quaternion edits
	gp.Pose.Quat = math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), 0.25)
	assertVector3(t, math32.Vec3(0, 0.25, 0), gp.Pose.Euler().Vector3())

	gp.Pose.EulerOrder = math32.ZYX
	assertVector3(t, math32.Vec3(0, 0.25, 0), gp.Pose.Euler().Vector3())
	assert.Equal(t, math32.ZYX, gp.Pose.Euler().Order)

	gp.SetEulerRotation(0, 45, 0)
	assertVector3(t, math32.Vec3(0, 45, 0), gp.Pose.EulerRotation())
}

func TestAddChildRejectsCycles(t *testing.T) {
	root := NewGroup()
	child := NewGroup(root)
	leaf := NewGroup(child)

	assert.ErrorIs(t, root.AddChild(root), tree.ErrSelf)
	assert.ErrorIs(t, leaf.AddChild(root), tree.ErrCycle)
	assert.ErrorIs(t, leaf.Attach(child), tree.ErrCycle)
	assert.Equal(t, tree.Node(child), leaf.Parent)
	assert.Nil(t, root.Parent)
}

func TestAddChildReparents(t *testing.T) {
	p1 := NewGroup()
	p2 := NewGroup()
	child := NewGroup(p1)
	require.NoError(t, p2.AddChild(child))
	assert.Equal(t, 0, p1.NumChildren())
	assert.Equal(t, 1, p2.NumChildren())
	assert.Equal(t, tree.Node(p2), child.Parent)

	child.RemoveFromParent()
	assert.Nil(t, child.Parent)
	assert.Equal(t, 0, p2.NumChildren())
}

func TestAttachKeepsWorldMatrix(t *testing.T) {
	p1 := NewGroup()
	p1.SetPos(1, 2, 3).SetAxisRotation(0, 1, 0, 30).SetScale(2, 2, 2)
	p2 := NewGroup()
	p2.SetPos(-1, 0, 4).SetAxisRotation(1, 0, 0, 45)
	child := NewGroup(p1)
	child.SetPos(0.5, 0, 0).SetAxisRotation(0, 0, 1, 20)

	p1.UpdateMatrixWorld(false)
	p2.UpdateMatrixWorld(false)
	want := child.Pose.WorldMatrix
	oldPos := child.Pose.Pos

	require.NoError(t, p2.Attach(child))
	assert.Equal(t, tree.Node(p2), child.Parent)
	assertMatrix4(t, &want, &child.Pose.WorldMatrix)
	assert.False(t, oldPos.IsEqualTol(child.Pose.Pos, testTol))

	p2.UpdateMatrixWorld(true)
	assertMatrix4(t, &want, &child.Pose.WorldMatrix)
}

func TestLookAt(t *testing.T) {
	gp := NewGroup()
	gp.LookAt(math32.Vec3(1, 0, 0))
	assertVector3(t, math32.Vec3(1, 0, 0), gp.WorldDirection())

	root := NewGroup()
	root.SetAxisRotation(0, 1, 0, 90)
	child := NewGroup(root)
	child.SetPos(0, 0, 2)
	child.LookAt(math32.Vec3(0, 0, 0))
	child.UpdateWorldMatrix(true, false)
	want := math32.Vec3(0, 0, 0).Sub(child.Pose.WorldPos()).Normal()
	assertVector3(t, want, child.WorldDirection())
	assertVector3(t, math32.Vec3(0, 0, 2), child.Pose.Pos)
}

func TestTranslateRotate(t *testing.T) {
	gp := NewGroup()
	gp.RotateY(math32.Pi / 2)
	gp.TranslateX(1)
	assertVector3(t, math32.Vec3(0, 0, -1), gp.Pose.Pos)

	gp2 := NewGroup()
	gp2.RotateOnWorldAxis(math32.Vec3(0, 0, 1), math32.Pi/2)
	gp2.ApplyQuat(math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), -math32.Pi/2))
	assert.True(t, gp2.Pose.Quat.IsIdentity() || math32.Abs(gp2.Pose.Quat.W) > 1-testTol)
}

func TestApplyMatrix4(t *testing.T) {
	gp := NewGroup()
	gp.SetPos(1, 0, 0)
	m := math32.Matrix4FromTransform(math32.Vec3(0, 2, 0), math32.NewQuatIdentity(), math32.Vec3(3, 3, 3))
	gp.ApplyMatrix4(m)
	assertVector3(t, math32.Vec3(3, 2, 0), gp.Pose.Pos)
	assertVector3(t, math32.Vec3(3, 3, 3), gp.Pose.Scale)
}

func TestLocalWorldConversion(t *testing.T) {
	root, chain := newChain()
	root.UpdateMatrixWorld(false)
	leaf := chain[2]
	p := math32.Vec3(0.3, -0.2, 0.7)
	assertVector3(t, p, leaf.WorldToLocal(leaf.LocalToWorld(p)))
	assertVector3(t, leaf.Pose.WorldPos(), leaf.LocalToWorld(math32.Vector3{}))
}

func TestTraverse(t *testing.T) {
	root := NewGroup()
	root.SetName("root")
	a := NewGroup(root)
	a.SetName("a")
	a1 := NewGroup(a)
	a1.SetName("a1")
	b := NewGroup(root)
	b.SetName("b")
	b1 := NewSolid(b)
	b1.SetName("b1")

	var all []string
	root.Traverse(func(n Node) { all = append(all, n.AsTree().Name) })
	assert.Equal(t, []string{"root", "a", "a1", "b", "b1"}, all)

	a.Visible = false
	var vis []string
	root.TraverseVisible(func(n Node) { vis = append(vis, n.AsTree().Name) })
	assert.Equal(t, []string{"root", "b", "b1"}, vis)

	var anc []string
	a1.TraverseAncestors(func(n Node) { anc = append(anc, n.AsTree().Name) })
	assert.Equal(t, []string{"a", "root"}, anc)

	assert.Equal(t, Node(b1), root.NodeByName("b1"))
	assert.Equal(t, Node(a1), root.NodeByID(a1.ID))
	assert.Nil(t, root.NodeByName("missing"))

	root.Clear()
	assert.Equal(t, 0, root.NumChildren())
	assert.Nil(t, a.Parent)
}

func TestNodeIDs(t *testing.T) {
	a := NewGroup()
	b := NewGroup()
	assert.Greater(t, b.ID, a.ID)
	assert.NotEqual(t, a.UUID, b.UUID)
	assert.True(t, a.Visible)
	assert.True(t, a.MatrixAutoUpdate)
	assert.Equal(t, DefaultUp, a.Up)
	assert.True(t, a.Layers.IsEnabled(0))
}

func TestClone(t *testing.T) {
	payload := &struct{ Verts int }{Verts: 8}
	gp := NewGroup()
	gp.SetName("group")
	gp.SetPos(1, 2, 3)
	sd := NewSolid(gp)
	sd.SetName("solid")
	sd.SetPayload(payload, math32.B3(-1, -1, -1, 1, 1, 1))
	sd.SetEulerRotation(0, 45, 0)

	cl := gp.Clone().(*Group)
	assert.Equal(t, "group", cl.Name)
	assert.NotEqual(t, gp.ID, cl.ID)
	assert.NotEqual(t, gp.UUID, cl.UUID)
	assert.Equal(t, gp.Pose.Pos, cl.Pose.Pos)
	require.Equal(t, 1, cl.NumChildren())

	csd := cl.Child(0).(*Solid)
	assert.Equal(t, "solid", csd.Name)
	assert.True(t, csd.Payload == any(payload))
	assert.Equal(t, sd.BBox, csd.BBox)
	assert.Equal(t, sd.Pose.Quat, csd.Pose.Quat)

	csd.Pose.Pos.X = 10
	assert.Equal(t, float32(0), sd.Pose.Pos.X)
}

func TestLayers(t *testing.T) {
	var ly Layers
	ly.Set(3)
	assert.True(t, ly.IsEnabled(3))
	assert.False(t, ly.IsEnabled(0))
	ly.Enable(0)
	ly.Toggle(3)
	assert.Equal(t, Layers(1), ly)
	assert.True(t, ly.Test(Layers(3)))
	ly.Disable(0)
	assert.False(t, ly.Test(Layers(0xffffffff)))
	ly.EnableAll()
	assert.True(t, ly.IsEnabled(31))
	ly.DisableAll()
	assert.Equal(t, Layers(0), ly)
}
