// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
)

// Group collects individual elements in a scene but does not have
// a payload of its own. It is used to move and rotate sets of nodes
// together.
type Group struct {
	NodeBase
}

var _ Node = &Group{}

// NewGroup returns a new [Group], added to the given parent if any.
func NewGroup(parent ...tree.Node) *Group {
	return tree.Init(&Group{}, parent...)
}

// BBox returns the union of the world bounding boxes of all the
// [Solid] nodes in this group. It uses the current world matrices,
// so it should be called after an update pass.
func (gp *Group) BBox() math32.Box3 {
	bb := math32.B3Empty()
	gp.Traverse(func(n Node) {
		if sd, ok := n.(*Solid); ok {
			bb.ExpandByBox(sd.WorldBBox())
		}
	})
	return bb
}
