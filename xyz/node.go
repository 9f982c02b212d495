// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a 3D scene graph: a tree of nodes with local
// position, rotation, and scale, whose world matrices are computed by
// an update pass over the tree, together with the camera, light, and
// solid node kinds consumed by an external renderer.
package xyz

import (
	"sync/atomic"

	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
	"github.com/google/uuid"
)

// Node is the common interface for all xyz scene nodes.
type Node interface {
	tree.Node

	// AsNode returns the generic [NodeBase] for our node, giving generic
	// access to all the base-level data structures without needing interface methods.
	AsNode() *NodeBase

	// IsSolid returns true if this is a renderable [Solid] node.
	IsSolid() bool

	// IsCamera returns true if this is a [Camera] node.
	IsCamera() bool

	// IsLight returns true if this is a [Light] node.
	IsLight() bool

	// UpdateMatrixWorld is the main update pass: it updates the local
	// matrix if [NodeBase.MatrixAutoUpdate] is set, updates the world
	// matrix if it is dirty or force is true, and recurses into children.
	// Once a node's world matrix is recomputed, all of its descendants are
	// forced to recompute theirs as well.
	UpdateMatrixWorld(force bool)

	// UpdateWorldMatrix updates the world matrix of just this node,
	// optionally first updating all of its ancestors and optionally
	// afterward updating all of its descendants.
	UpdateWorldMatrix(updateParents, updateChildren bool)
}

// lastID is the last node ID assigned.
var lastID atomic.Int64

// NodeBase is the basic 3D scene graph node, which has the full transform
// information relative to parent, and computed world matrix.
// It is embedded in all node types.
type NodeBase struct {
	tree.NodeBase

	// Pose is the complete specification of position and orientation.
	Pose Pose

	// ID is a unique sequential identifier assigned when the node is
	// initialized. IDs are never reused, including for clones.
	ID int64 `copier:"-"`

	// UUID is a universally unique identifier assigned when the node is initialized.
	UUID uuid.UUID `copier:"-"`

	// Up is the up direction used by [NodeBase.LookAt].
	Up math32.Vector3

	// Visible is whether this node and its children are visible.
	// [NodeBase.TraverseVisible] does not descend into invisible nodes.
	Visible bool

	// MatrixAutoUpdate is whether the local matrix is recomputed from the
	// pose on every update pass. Turn it off for nodes whose matrix is
	// set directly.
	MatrixAutoUpdate bool

	// MatrixWorldAutoUpdate is whether the update pass descends into this
	// node when its parent was not itself updated.
	MatrixWorldAutoUpdate bool

	// MatrixWorldNeedsUpdate is set when the local matrix has changed and
	// the world matrix must be recomputed on the next update pass.
	MatrixWorldNeedsUpdate bool

	// Layers is the set of layers this node belongs to.
	Layers Layers

	// RenderOrder overrides the default render sorting order.
	RenderOrder int

	// FrustumCulled is whether the renderer may skip this node
	// when it is outside the camera frustum.
	FrustumCulled bool

	// CastShadow is whether this node casts shadows.
	CastShadow bool

	// ReceiveShadow is whether this node receives shadows.
	ReceiveShadow bool

	// worldChanged is set when the world matrix takes a new value,
	// and cleared once the scene has rendered it.
	worldChanged bool
}

// DefaultUp is the default [NodeBase.Up] direction for new nodes.
var DefaultUp = math32.Vec3(0, 1, 0)

// DefaultMatrixAutoUpdate is the default [NodeBase.MatrixAutoUpdate] for new nodes.
var DefaultMatrixAutoUpdate = true

// DefaultMatrixWorldAutoUpdate is the default [NodeBase.MatrixWorldAutoUpdate] for new nodes.
var DefaultMatrixWorldAutoUpdate = true

// AsNode returns the given value as a value of type [Node] if the type
// of the given value embeds [NodeBase], or nil otherwise.
func AsNode(n tree.Node) (Node, *NodeBase) {
	if n == nil {
		return nil, nil
	}
	if t, ok := n.(Node); ok {
		return t, t.AsNode()
	}
	return nil, nil
}

func (nb *NodeBase) AsNode() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) IsCamera() bool {
	return false
}

func (nb *NodeBase) IsLight() bool {
	return false
}

// Init assigns a new ID and UUID and sets the defaults.
func (nb *NodeBase) Init() {
	nb.ID = lastID.Add(1)
	nb.UUID = uuid.New()
	nb.Pose.Defaults()
	nb.Up = DefaultUp
	nb.Visible = true
	nb.MatrixAutoUpdate = DefaultMatrixAutoUpdate
	nb.MatrixWorldAutoUpdate = DefaultMatrixWorldAutoUpdate
	nb.Layers = 1
	nb.FrustumCulled = true
}

// parentNode returns our parent as an xyz node, or nil if we are the root
// or our parent is not an xyz node.
func (nb *NodeBase) parentNode() (Node, *NodeBase) {
	return AsNode(nb.Parent)
}

// asThis returns our [NodeBase.This] as a [Node].
func (nb *NodeBase) asThis() Node {
	ni, _ := AsNode(nb.This)
	return ni
}

// NewNode returns a new plain [NodeBase], added to the given parent if any.
// Most code should use one of the specific node kinds instead.
func NewNode(parent ...tree.Node) *NodeBase {
	return tree.Init(&NodeBase{}, parent...)
}
