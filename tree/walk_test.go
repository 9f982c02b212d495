// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	. "cogentcore.org/scenegraph/tree"
	"cogentcore.org/scenegraph/tree/testdata"
	"github.com/stretchr/testify/assert"
)

func newTestTree() *NodeBase {
	root := NewNodeBase()
	root.SetName("root")
	NewNodeBase(root).SetName("child0")
	child1 := NewNodeBase(root).SetName("child1")
	schild1 := NewNodeBase(child1).SetName("subchild1")
	testdata.NewNodeEmbed(schild1).SetName("subsubchild1")
	testdata.NewNodeEmbed(root).SetName("child2")
	NewNodeBase(root).SetName("child3")
	return root
}

func TestDown(t *testing.T) {
	var cur Node = newTestTree()
	res := []string{}
	for {
		res = append(res, cur.AsTree().Path())
		curi := Next(cur)
		if curi == nil {
			break
		}
		cur = curi
	}
	assert.Equal(t, []string{"/root", "/root/child0", "/root/child1", "/root/child1/subchild1", "/root/child1/subchild1/subsubchild1", "/root/child2", "/root/child3"}, res)
}

func TestUp(t *testing.T) {
	cur := Last(newTestTree())
	res := []string{}
	for {
		res = append(res, cur.AsTree().Path())
		curi := Previous(cur)
		if curi == nil {
			break
		}
		cur = curi
	}
	assert.Equal(t, []string{"/root/child3", "/root/child2", "/root/child1/subchild1/subsubchild1", "/root/child1/subchild1", "/root/child1", "/root/child0", "/root"}, res)
}

func TestWalkDown(t *testing.T) {
	root := newTestTree()
	res := []string{}
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return n.AsTree().Name != "child1"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2", "child3"}, res)

	res = res[:0]
	root.WalkDownPost(func(n Node) bool {
		return Continue
	}, func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"child0", "subsubchild1", "subchild1", "child1", "child2", "child3", "root"}, res)
}

func TestWalkUp(t *testing.T) {
	root := newTestTree()
	leaf := root.FindPath("child1/subchild1/subsubchild1")
	if assert.NotNil(t, leaf) {
		res := []string{}
		leaf.AsTree().WalkUp(func(n Node) bool {
			res = append(res, n.AsTree().Name)
			return Continue
		})
		assert.Equal(t, []string{"subsubchild1", "subchild1", "child1", "root"}, res)

		res = res[:0]
		done := leaf.AsTree().WalkUpParent(func(n Node) bool {
			res = append(res, n.AsTree().Name)
			return n.AsTree().Name != "child1"
		})
		assert.False(t, done)
		assert.Equal(t, []string{"subchild1", "child1"}, res)
		assert.Equal(t, 1, leaf.AsTree().ParentLevel(root.ChildByName("child1")))
		assert.Equal(t, root, Root(leaf))
	}
}
