// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/scenegraph/base/errors"
)

var (
	// ErrSelf is returned when a node is added as a child of itself.
	ErrSelf = errors.New("tree: a node can not be added as a child of itself")

	// ErrCycle is returned when a node is added as a child of one of its
	// own descendants, which would make it its own ancestor.
	ErrCycle = errors.New("tree: a node can not be added as a child of its own descendant")

	// ErrNilChild is returned when a nil node is added as a child.
	ErrNilChild = errors.New("tree: child node is nil")

	// ErrNotInit is returned when a child is added to a parent
	// whose [NodeBase.This] has not been set.
	ErrNotInit = errors.New("tree: parent node has nil This; use tree.Init on root nodes")
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// All nodes must be properly initialized by using one of [Init],
// [NodeBase.AddChild], [NodeBase.InsertChild], or [NodeBase.Clone].
// This ensures that the [NodeBase.This] field is set correctly and
// the [Node.Init] method is called.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to other children of
	// the same parent. It can be used for finding nodes by path. If not otherwise set,
	// it defaults to the lowercase name of the node type combined with the total number
	// of children that have ever been added to the node's parent.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types.
	// It is set to nil when the node is destroyed.
	This Node `copier:"-" json:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. To change the parent of a node, use [MoveToParent]
	// or [NodeBase.AddChild] on the new parent; you should not set this field directly.
	// Nodes can only have one parent at a time.
	Parent Node `copier:"-" json:"-"`

	// Children is the list of children of this node, which this node owns.
	// All of them have this node as their parent. Use the child helper
	// methods to modify it so that parent links stay consistent.
	Children []Node `copier:"-" json:",omitempty"`

	// OnChildAdded is called when a node is added as a direct child of this node,
	// after [Node.OnAdd] has been called on the child.
	OnChildAdded func(n Node) `copier:"-" json:"-"`

	// OnChildRemoved is called when a direct child of this node is removed,
	// after [Node.OnRemove] has been called on the child.
	OnChildRemoved func(n Node) `copier:"-" json:"-"`

	// numLifetimeChildren is the number of children that have ever been added to this
	// node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the name of this node.
func (n *NodeBase) SetName(name string) *NodeBase {
	n.Name = name
	return n
}

// NewInstance returns a new, uninitialized instance of this node type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// typeName returns the lowercase type name of the given node,
// used for default naming.
func typeName(n Node) string {
	return strings.ToLower(reflect.TypeOf(n).Elem().Name())
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	n.index = idx
	return idx
}

// ParentLevel finds a given potential parent node recursively up the
// hierarchy, returning the level above the current node that the parent was
// found, and -1 if not found.
func (n *NodeBase) ParentLevel(parent Node) int {
	parLev := -1
	level := 0
	n.WalkUpParent(func(k Node) bool {
		if k == parent {
			parLev = level
			return Break
		}
		level++
		return Continue
	})
	return parLev
}

// ParentByName finds first parent recursively up hierarchy that matches
// the given name. It returns nil if not found.
func (n *NodeBase) ParentByName(name string) Node {
	var found Node
	n.WalkUpParent(func(k Node) bool {
		if k.AsTree().Name == name {
			found = k
			return Break
		}
		return Continue
	})
	return found
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using [NodeBase.Name]s separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// PathFrom returns the path to this node from the given parent node,
// excluding the name of the parent and the leading slash; for example,
// in the tree a/b/c/d/e, the result of d.PathFrom(b) would be c/d.
func (n *NodeBase) PathFrom(parent Node) string {
	if n.This == parent {
		return ""
	}
	parent = parent.AsTree().This
	if n.Parent == nil || n.Parent == parent {
		return EscapePathName(n.Name)
	}
	return n.Parent.AsTree().PathFrom(parent) + "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path from this node,
// in the format produced by [NodeBase.PathFrom]. Index-based
// access ([0] for the first child, [-1] for the last) is also
// supported. It returns nil if no node is found at the given path.
func (n *NodeBase) FindPath(path string) Node {
	curn := n.This
	for _, pe := range strings.Split(strings.TrimSpace(path), "/") {
		if len(pe) == 0 {
			continue
		}
		idx := findPathChild(curn, UnescapePathName(pe))
		if idx < 0 {
			return nil
		}
		curn = curn.AsTree().Children[idx]
	}
	return curn
}

// findPathChild finds the child with the given path element in [NodeBase.FindPath].
func findPathChild(n Node, child string) int {
	kids := n.AsTree().Children
	if child[0] == '[' && child[len(child)-1] == ']' {
		idx, err := strconv.Atoi(child[1 : len(child)-1])
		if err != nil {
			return -1
		}
		if idx < 0 { // from end
			idx = len(kids) + idx
		}
		if idx < 0 || idx >= len(kids) {
			return -1
		}
		return idx
	}
	return IndexByName(kids, child)
}

// Adding and Inserting Children:

// CanAddChild returns an error if the given node can not become a child of n.
func (n *NodeBase) CanAddChild(kid Node) error {
	if kid == nil {
		return ErrNilChild
	}
	if n.This == nil {
		return ErrNotInit
	}
	InitNode(kid)
	if kid == n.This {
		return ErrSelf
	}
	if n.ParentLevel(kid) >= 0 {
		return ErrCycle
	}
	return nil
}

// AddChild adds the given child at the end of the children list.
// If the child already has a parent (including this node), it is first
// removed from it, so a node never has two parents. Adding a node to
// itself or to one of its own descendants is rejected with [ErrSelf]
// or [ErrCycle]; the error is logged and the tree is left unchanged.
func (n *NodeBase) AddChild(kid Node) error {
	return n.InsertChild(kid, len(n.Children))
}

// InsertChild adds the given child at the given position in the children list,
// with the same reparenting and cycle rules as [NodeBase.AddChild]. The index
// is clamped to the valid range.
func (n *NodeBase) InsertChild(kid Node, index int) error {
	if err := n.CanAddChild(kid); err != nil {
		return errors.Log(err)
	}
	if kid.AsTree().Parent != nil {
		kid.AsTree().Parent.AsTree().RemoveChild(kid)
	}
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
	return nil
}

// Removing and Deleting Children:

// RemoveChild detaches the given child from this node without destroying it,
// calling [Node.OnRemove] on it. It returns false if the node is not a child.
func (n *NodeBase) RemoveChild(kid Node) bool {
	if kid == nil {
		return false
	}
	idx := IndexOf(n.Children, kid, kid.AsTree().index)
	if idx < 0 {
		return false
	}
	n.removeChildAt(idx)
	return true
}

// removeChildAt detaches the child at the given valid index.
func (n *NodeBase) removeChildAt(idx int) Node {
	kid := n.Children[idx]
	n.Children = slices.Delete(n.Children, idx, idx+1)
	kid.AsTree().Parent = nil
	kid.OnRemove()
	if n.OnChildRemoved != nil {
		n.OnChildRemoved(kid)
	}
	return kid
}

// RemoveChildren detaches all children from this node without
// destroying them, and returns them.
func (n *NodeBase) RemoveChildren() []Node {
	kids := slices.Clone(n.Children)
	for range kids {
		n.removeChildAt(len(n.Children) - 1)
	}
	return kids
}

// DeleteChildAt detaches and destroys the child at the given index.
// It returns false if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	if n.Child(index) == nil {
		return false
	}
	n.removeChildAt(index).Destroy()
	return true
}

// DeleteChild detaches and destroys the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child, child.AsTree().index)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildByName deletes child node by name, returning false
// if it can not find it.
func (n *NodeBase) DeleteChildByName(name string) bool {
	idx := IndexByName(n.Children, name)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildren detaches and destroys all children nodes.
func (n *NodeBase) DeleteChildren() {
	for _, kid := range n.RemoveChildren() {
		kid.Destroy()
	}
}

// Delete detaches this node from its parent's children list
// and then destroys itself.
func (n *NodeBase) Delete() {
	if n.This == nil {
		return
	}
	n.This.Destroy()
}

// Destroy detaches the node from its parent and recursively destroys
// all of its children, and all of its children's children, etc.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	if n.Parent != nil {
		n.Parent.AsTree().RemoveChild(n.This)
	}
	n.DeleteChildren()
	n.This = nil
}

// Deep Copy:

// note: we use the copy from direction (instead of copy to), as the receiver
// is modified whereas the from is not and assignment is typically in the same
// direction.

// Clone creates and returns a deep copy of the tree from this node down,
// with the same names. The clone is a new root; it has no parent.
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	InitNode(nc)
	nc.AsTree().SetName(n.Name)
	nc.CopyFieldsFrom(n.This)
	for _, kid := range n.Children {
		kc := kid.AsTree().Clone()
		nc.AsTree().AddChild(kc)
	}
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node.
// By default, it is [NodeBase.CopyFieldsFrom], which automatically does
// a deep copy of all of the exported fields of the node that do not a have a
// `copier:"-"` struct tag.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Event methods:

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}

// OnRemove is a placeholder implementation of
// [Node.OnRemove] that does nothing.
func (n *NodeBase) OnRemove() {}
