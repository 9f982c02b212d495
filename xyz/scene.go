// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
)

// Renderer draws a scene as seen from a camera. It reads the world
// matrices of the nodes and the view and projection matrices of the
// camera, all of which are current when Render is called.
type Renderer interface {
	Render(sc *Scene, cam Camera) error
}

// Scene is the root node of a 3D scene graph. It tracks whether the
// scene needs an update pass or just a re-render, and drives both
// through [Scene.DoUpdate].
type Scene struct {
	NodeBase

	// Background is the color the renderer clears to.
	Background color.RGBA

	// Camera is the camera used for rendering. It does not need to be
	// part of the scene tree; a camera outside the tree is updated as
	// its own root.
	Camera Camera `copier:"-"`

	// NeedsUpdate means that something has changed that requires a new
	// render even if no world matrix changed. The update pass itself runs
	// on every [Scene.DoUpdate].
	NeedsUpdate bool `copier:"-"`

	// NeedsRender means that something has been updated (minimally the
	// camera pose) and a new render is required.
	NeedsRender bool `copier:"-"`
}

var _ Node = &Scene{}

// NewScene returns a new [Scene] with a default [PerspectiveCamera].
func NewScene() *Scene {
	sc := tree.Init(&Scene{})
	sc.Camera = NewPerspectiveCamera()
	return sc
}

func (sc *Scene) Init() {
	sc.NodeBase.Init()
	sc.Background = color.RGBA{0, 0, 0, 255}
	sc.NeedsUpdate = true
}

// SetNeedsRender sets [Scene.NeedsRender] to true.
func (sc *Scene) SetNeedsRender() {
	sc.NeedsRender = true
}

// SetNeedsUpdate sets [Scene.NeedsUpdate] to true.
func (sc *Scene) SetNeedsUpdate() {
	sc.NeedsUpdate = true
}

// UpdateNodes runs the update pass over the scene tree, and over the
// camera if it is not within the tree.
func (sc *Scene) UpdateNodes() {
	if sc.MatrixWorldAutoUpdate {
		sc.UpdateMatrixWorld(false)
	}
	if sc.Camera == nil {
		return
	}
	cb := sc.Camera.AsNode()
	if cb.Parent == nil && cb.MatrixWorldAutoUpdate {
		sc.Camera.UpdateMatrixWorld(false)
	}
}

// UpdateNodesIfNeeded runs [Scene.UpdateNodes] if [Scene.NeedsUpdate]
// is set, and resets it.
func (sc *Scene) UpdateNodesIfNeeded() {
	if sc.NeedsUpdate {
		sc.UpdateNodes()
		sc.NeedsUpdate = false
	}
}

// takeWorldChanges reports whether any world matrix in the scene,
// or of its camera, has changed since the last call, and resets
// the change marks.
func (sc *Scene) takeWorldChanges() bool {
	changed := false
	sc.Traverse(func(n Node) {
		nb := n.AsNode()
		changed = changed || nb.worldChanged
		nb.worldChanged = false
	})
	if sc.Camera != nil {
		cb := sc.Camera.AsNode()
		changed = changed || cb.worldChanged
		cb.worldChanged = false
	}
	return changed
}

// DoUpdate runs the update pass over the scene on every call, so that
// pose changes written directly by animation code are always picked up,
// and then renders with the given renderer if any world matrix changed
// or [Scene.NeedsUpdate] or [Scene.NeedsRender] is set. It returns
// whether it rendered. Render errors are logged and do not stop updating.
func (sc *Scene) DoUpdate(r Renderer) bool {
	sc.UpdateNodes()
	changed := sc.takeWorldChanges()
	if !changed && !sc.NeedsUpdate && !sc.NeedsRender {
		return false
	}
	sc.Render(r)
	sc.NeedsUpdate = false
	sc.NeedsRender = false
	return true
}

// Render calls the renderer with the scene camera. The update pass
// is not run; see [Scene.DoUpdate].
func (sc *Scene) Render(r Renderer) error {
	if sc.Camera == nil {
		return errors.Log(fmt.Errorf("xyz.Scene %v: no Camera to render with", sc.Name))
	}
	return errors.Log(r.Render(sc, sc.Camera))
}

// RenderList returns the visible [Solid] nodes that are in the camera
// layers and not culled by its frustum, sorted by
// [NodeBase.RenderOrder] and then tree order. The world matrices
// must be current.
func (sc *Scene) RenderList(cam Camera) []*Solid {
	cb := cam.AsCamera()
	var sds []*Solid
	sc.TraverseVisible(func(n Node) {
		sd, ok := n.(*Solid)
		if !ok || !sd.Layers.Test(cb.Layers) {
			return
		}
		if sd.FrustumCulled && !cb.InFrustum(sd.WorldBBox()) {
			return
		}
		sds = append(sds, sd)
	})
	slices.SortStableFunc(sds, func(a, b *Solid) int {
		return a.RenderOrder - b.RenderOrder
	})
	return sds
}

// InFrustum returns whether the given world box may be visible from the
// camera. An empty box is taken as unknown bounds and is always visible.
// Boxes straddling the camera plane are kept.
func (cb *CameraBase) InFrustum(bb math32.Box3) bool {
	if bb.IsEmpty() {
		return true
	}
	vb := bb.MulMatrix4(&cb.MatrixWorldInverse)
	if vb.Max.Z >= 0 {
		return vb.Min.Z < 0
	}
	ndc := vb.ProjectToNDC(&cb.ProjectionMatrix)
	return ndc.IntersectsBox(math32.B3(-1, -1, -1, 1, 1, 1))
}

// SolidsContaining returns all the visible solids whose world bounding
// box contains the given world point.
func (sc *Scene) SolidsContaining(pos math32.Vector3) []*Solid {
	var sds []*Solid
	sc.TraverseVisible(func(n Node) {
		if sd, ok := n.(*Solid); ok && sd.WorldBBox().ContainsPoint(pos) {
			sds = append(sds, sd)
		}
	})
	return sds
}
