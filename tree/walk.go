// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if it
// returns [Continue]. It returns whether walking was finished (false if it
// was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	if n.This == nil {
		return true
	}
	if !fun(n.This) {
		return false
	}
	return n.WalkUpParent(fun)
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself), nearest first. It stops walking if the function returns
// [Break] and keeps walking if it returns [Continue]. It returns whether
// walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	cur := n.Parent
	for cur != nil {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
	return true
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first, pre-order manner. It stops walking the current branch
// of the tree if the function returns [Break] and keeps walking if it
// returns [Continue]; siblings of a skipped branch are still visited.
// The function may modify the children of the node it is called on.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	// fun can destroy the node, so we have to check This after it
	if !fun(n.This) || n.This == nil {
		return
	}
	for _, kid := range slices.Clone(n.Children) {
		kid.AsTree().WalkDown(fun)
	}
}

// WalkDownPost iterates in a depth-first manner over the children, calling
// shouldContinue on each node to test if processing should proceed (if it returns
// [Break] then that branch of the tree is not further processed),
// and then calls the given function after all of a node's children
// have been iterated over. In effect, this means that the given function
// is called for deeper nodes first.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if shouldContinue(n.This) {
		for _, kid := range slices.Clone(n.Children) {
			kid.AsTree().WalkDownPost(shouldContinue, fun)
		}
	}
	fun(n.This)
}

// Last returns the last node in the tree.
func Last(n Node) Node {
	n = lastChild(n)
	last := n
	n.AsTree().WalkDown(func(k Node) bool {
		last = k
		return Continue
	})
	return last
}

// lastChild returns the last child under the given node,
// or the node itself if it has no children.
func lastChild(n Node) Node {
	nb := n.AsTree()
	if nb.HasChildren() {
		return lastChild(nb.Child(nb.NumChildren() - 1))
	}
	return n
}

// Previous returns the previous node in the tree,
// or nil if this is the root node.
func Previous(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	myidx := nb.IndexInParent()
	if myidx > 0 {
		nn := nb.Parent.AsTree().Child(myidx - 1)
		return lastChild(nn)
	}
	return nb.Parent
}

// Next returns next node in the tree,
// or nil if this is the last node.
func Next(n Node) Node {
	if !n.AsTree().HasChildren() {
		return NextSibling(n)
	}
	return n.AsTree().Child(0)
}

// NextSibling returns the next sibling of this node,
// or of its nearest ancestor that has one, or nil if there is none.
func NextSibling(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	myidx := nb.IndexInParent()
	if myidx >= 0 && myidx < nb.Parent.AsTree().NumChildren()-1 {
		return nb.Parent.AsTree().Child(myidx + 1)
	}
	return NextSibling(nb.Parent)
}
