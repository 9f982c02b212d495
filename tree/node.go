// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the parent / child hierarchy underlying
// the scene graph, centered on the [Node] interface.
//
// A node exclusively owns its children. The parent link is a plain
// back-reference used for walking up the tree; it is set and cleared
// only by the child management methods on [NodeBase].
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level tree types
// must embed it. This interface only contains the tree functionality that
// higher-level tree types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
// All values that implement [Node] are pointer values.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Init is called when the node is first initialized.
	// It is called before the node is added to the tree,
	// so it will not have any parents or siblings.
	// It will be called only once in the lifetime of the node.
	// Types that need to set default field values or assign
	// identity should do so here.
	Init()

	// OnAdd is called when the node is added to a parent.
	// It is called again each time the node is moved to a new parent.
	// It does nothing by default.
	OnAdd()

	// OnRemove is called when the node is removed from its parent,
	// just after the parent link has been cleared.
	// It does nothing by default.
	OnRemove()

	// Destroy recursively deletes and destroys the node, all of its children,
	// and all of its children's children, etc. Node types can implement this
	// to do additional necessary destruction; if they do, they should call
	// [NodeBase.Destroy] at the end of their implementation.
	Destroy()

	// CopyFieldsFrom copies the fields of the node from the given node.
	// By default, it is [NodeBase.CopyFieldsFrom], which automatically does
	// a deep copy of all of the fields of the node that do not a have a
	// `copier:"-"` struct tag. Custom CopyFieldsFrom methods should call
	// [NodeBase.CopyFieldsFrom] first and then only handle specific fields
	// that can not be automatically copied.
	CopyFieldsFrom(from Node)
}
