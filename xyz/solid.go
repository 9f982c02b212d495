// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
)

// Solid is a node with a renderable payload, such as a mesh and
// material owned by the renderer. The scene graph only positions it.
type Solid struct {
	NodeBase

	// Payload is the renderer-owned data drawn for this node.
	// Clones share the same payload.
	Payload any `copier:"-"`

	// BBox is the bounding box of the payload in local coordinates.
	// An empty box means the bounds are unknown.
	BBox math32.Box3
}

var _ Node = &Solid{}

// NewSolid returns a new [Solid], added to the given parent if any.
func NewSolid(parent ...tree.Node) *Solid {
	return tree.Init(&Solid{}, parent...)
}

func (sd *Solid) Init() {
	sd.NodeBase.Init()
	sd.BBox = math32.B3Empty()
}

func (sd *Solid) IsSolid() bool {
	return true
}

// SetPayload sets the [Solid.Payload] and its local bounding box.
func (sd *Solid) SetPayload(payload any, bbox math32.Box3) *Solid {
	sd.Payload = payload
	sd.BBox = bbox
	return sd
}

// WorldBBox returns the local bounding box transformed into world
// space by the current world matrix.
func (sd *Solid) WorldBBox() math32.Box3 {
	return sd.BBox.MulMatrix4(&sd.Pose.WorldMatrix)
}

// CopyFieldsFrom copies all the fields, and shares the payload of the
// other solid rather than copying it.
func (sd *Solid) CopyFieldsFrom(from tree.Node) {
	sd.NodeBase.CopyFieldsFrom(from)
	if fs, ok := from.(*Solid); ok {
		sd.Payload = fs.Payload
	}
}
