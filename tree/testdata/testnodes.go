// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides node types used in tree tests.
package testdata

import "cogentcore.org/scenegraph/tree"

// NodeEmbed embeds tree.NodeBase and adds a few fields,
// and records its lifecycle calls.
type NodeEmbed struct {
	tree.NodeBase
	Mbr1 string
	Mbr2 int
	Vals []float32

	// Skip is not copied by CopyFieldsFrom.
	Skip string `copier:"-"`

	// Events records the lifecycle calls in order.
	Events []string `copier:"-"`
}

// NewNodeEmbed returns a new NodeEmbed, added to the given parent if any.
func NewNodeEmbed(parent ...tree.Node) *NodeEmbed {
	return tree.Init(&NodeEmbed{}, parent...)
}

func (n *NodeEmbed) Init()     { n.Events = append(n.Events, "init") }
func (n *NodeEmbed) OnAdd()    { n.Events = append(n.Events, "add") }
func (n *NodeEmbed) OnRemove() { n.Events = append(n.Events, "remove") }
