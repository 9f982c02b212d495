// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"errors"
	"testing"

	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRenderer struct {
	renders int
	err     error
	solids  []*Solid
}

func (tr *testRenderer) Render(sc *Scene, cam Camera) error {
	tr.renders++
	tr.solids = sc.RenderList(cam)
	return tr.err
}

func newTestScene() (*Scene, *Solid, *Solid) {
	sc := NewScene()
	sc.Camera.AsNode().SetPos(0, 0, 5)
	gp := NewGroup(sc)
	gp.SetName("group")
	a := NewSolid(gp)
	a.SetName("a")
	a.SetPayload("box", math32.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5))
	b := NewSolid(gp)
	b.SetName("b")
	b.SetPos(2, 0, 0)
	b.SetPayload("box", math32.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5))
	return sc, a, b
}

func TestSceneDoUpdate(t *testing.T) {
	sc, _, b := newTestScene()
	tr := &testRenderer{}

	assert.True(t, sc.DoUpdate(tr))
	assert.Equal(t, 1, tr.renders)
	assertVector3(t, math32.Vec3(2, 0, 0), b.Pose.WorldPos())
	assert.False(t, sc.DoUpdate(tr))
	assert.Equal(t, 1, tr.renders)

	// poses written directly, with no flag set, are picked up
	b.SetPos(3, 0, 0)
	assert.True(t, sc.DoUpdate(tr))
	assert.Equal(t, 2, tr.renders)
	assertVector3(t, math32.Vec3(3, 0, 0), b.Pose.WorldPos())
	assert.False(t, sc.DoUpdate(tr))

	sc.NodeByName("group").AsNode().Pose.Pos.Y = 1
	assert.True(t, sc.DoUpdate(tr))
	assert.Equal(t, 3, tr.renders)
	assertVector3(t, math32.Vec3(3, 1, 0), b.Pose.WorldPos())

	// the camera is outside the tree
	sc.Camera.AsNode().SetPos(0, 0, 6)
	assert.True(t, sc.DoUpdate(tr))
	assert.Equal(t, 4, tr.renders)
	assertVector3(t, math32.Vec3(0, 0, 6), sc.Camera.AsNode().Pose.WorldPos())

	// the flags render without any pose change
	sc.SetNeedsRender()
	assert.True(t, sc.DoUpdate(tr))
	assert.Equal(t, 5, tr.renders)
	sc.SetNeedsUpdate()
	assert.True(t, sc.DoUpdate(tr))
	assert.Equal(t, 6, tr.renders)
	assert.False(t, sc.DoUpdate(tr))

	// render errors are logged and do not stop updates
	tr.err = errors.New("device lost")
	sc.SetNeedsRender()
	assert.True(t, sc.DoUpdate(tr))
	assert.False(t, sc.NeedsRender)
}

func TestSceneCameraOutsideTree(t *testing.T) {
	sc, _, _ := newTestScene()
	cam := sc.Camera.AsCamera()
	require.Nil(t, cam.Parent)
	sc.UpdateNodes()
	id := cam.Pose.WorldMatrix.Mul(&cam.MatrixWorldInverse)
	assertMatrix4(t, math32.Identity4(), id)
	assertVector3(t, math32.Vec3(0, 0, 5), cam.Pose.WorldPos())
}

func TestSceneRenderList(t *testing.T) {
	sc, a, b := newTestScene()
	tr := &testRenderer{}
	sc.DoUpdate(tr)
	assert.Equal(t, []*Solid{a, b}, tr.solids)

	b.RenderOrder = -1
	sc.SetNeedsRender()
	sc.DoUpdate(tr)
	assert.Equal(t, []*Solid{b, a}, tr.solids)

	b.Layers.Set(2)
	sc.SetNeedsRender()
	sc.DoUpdate(tr)
	assert.Equal(t, []*Solid{a}, tr.solids)

	a.SetPos(0, 0, 20)
	sc.SetNeedsUpdate()
	sc.DoUpdate(tr)
	assert.Empty(t, tr.solids)

	a.FrustumCulled = false
	sc.SetNeedsRender()
	sc.DoUpdate(tr)
	assert.Equal(t, []*Solid{a}, tr.solids)

	sc.NodeByName("group").AsNode().Visible = false
	sc.SetNeedsRender()
	sc.DoUpdate(tr)
	assert.Empty(t, tr.solids)
}

func TestSceneNoCamera(t *testing.T) {
	sc, _, _ := newTestScene()
	sc.Camera = nil
	tr := &testRenderer{}
	assert.Error(t, sc.Render(tr))
	assert.Equal(t, 0, tr.renders)
	assert.True(t, sc.DoUpdate(tr))
}

func TestSolidsContaining(t *testing.T) {
	sc, a, b := newTestScene()
	sc.UpdateNodes()
	assert.Equal(t, []*Solid{a}, sc.SolidsContaining(math32.Vec3(0.1, 0, 0)))
	assert.Equal(t, []*Solid{b}, sc.SolidsContaining(math32.Vec3(2.1, 0, 0)))
	assert.Empty(t, sc.SolidsContaining(math32.Vec3(1, 0, 0)))
}

func TestGroupBBox(t *testing.T) {
	sc, _, _ := newTestScene()
	sc.UpdateNodes()
	bb := sc.NodeByName("group").(*Group).BBox()
	assertVector3(t, math32.Vec3(-0.5, -0.5, -0.5), bb.Min)
	assertVector3(t, math32.Vec3(2.5, 0.5, 0.5), bb.Max)
}

func TestLights(t *testing.T) {
	sc := NewScene()
	dl := NewDirectionalLight(sc)
	assert.True(t, dl.IsLight())
	assert.Equal(t, float32(1), dl.Intensity)
	assertVector3(t, math32.Vec3(0, -1, 0), dl.Direction())

	tgt := NewGroup(sc)
	tgt.SetPos(0, 1, 3)
	dl.Target = tgt
	assertVector3(t, math32.Vec3(0, 0, 1), dl.Direction())

	sl := NewSpotLight(sc)
	assertVector3(t, math32.Vec3(0, -1, 0), sl.Direction())
	sl.SetPos(0, 0, 0)
	sl.LookAt(math32.Vec3(1, 0, 0))
	assertVector3(t, math32.Vec3(-1, 0, 0), sl.WorldDirection())

	pl := NewPointLight(sc)
	assert.Equal(t, float32(2), pl.Decay)
	amb := NewAmbientLight(sc)
	assert.True(t, amb.On)
	var lights []Light
	sc.Traverse(func(n Node) {
		if lt, ok := n.(Light); ok {
			lights = append(lights, lt)
		}
	})
	assert.Len(t, lights, 4)
}
