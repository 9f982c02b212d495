// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"strconv"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node, setting [NodeBase.This] and calling
// [Node.Init] the first time it is called on a node. Later calls do nothing.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		nb.This.Init()
	}
}

// Init initializes the given new node and, if a parent is given, adds it
// as a child of that parent. It returns the node for chaining. This is the
// standard way of making root nodes and is used by the typed New functions
// in higher-level packages.
func Init[T Node](n T, parent ...Node) T {
	InitNode(n)
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

// SetParent sets the parent of the given node to the given parent node.
// It does not add the node to the parent's list of children; see
// [NodeBase.AddChild] for a version that does. It names the child
// if it has no name, and calls [Node.OnAdd] on the child and
// [NodeBase.OnChildAdded] on the parent.
func SetParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	if parent != nil {
		pn := parent.AsTree()
		pn.numLifetimeChildren++
		if n.Name == "" {
			n.Name = typeName(child) + "-" + strconv.FormatUint(pn.numLifetimeChildren-1, 10) // must subtract 1 so we start at 0
		}
	}
	child.OnAdd()
	if parent != nil && parent.AsTree().OnChildAdded != nil {
		parent.AsTree().OnChildAdded(child)
	}
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) error {
	return parent.AsTree().AddChild(child)
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	nb := n.AsTree()
	return nb.This == nil || nb.Parent == nil || nb.Parent.AsTree().This == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n.AsTree().This
	}
	return Root(n.AsTree().Parent)
}

// NewNodeBase returns a new plain [NodeBase], added to the given parent if any.
func NewNodeBase(parent ...Node) *NodeBase {
	return Init(&NodeBase{}, parent...)
}
