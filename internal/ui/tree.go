package ui

import (
	"github.com/jinzhu/copier"
)

// Tree owns the spawned UI nodes. Roots are drawn in spawn order; children draw over their parent.
type Tree struct {
	roots []*Node
	count int
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Spawn adds a root node built from b and returns it.
func (t *Tree) Spawn(b Bundle) *Node {
	n := t.newNode(b)
	t.roots = append(t.roots, n)
	return n
}

// ChildBuilder spawns children under one parent; it is handed to WithChildren.
type ChildBuilder struct {
	tree   *Tree
	parent *Node
}

// Spawn adds a child of the builder's parent and returns it.
func (c *ChildBuilder) Spawn(b Bundle) *Node {
	n := c.tree.newNode(b)
	n.Parent = c.parent
	c.parent.Children = append(c.parent.Children, n)
	return n
}

// Parent returns the node children are being added to.
func (c *ChildBuilder) Parent() *Node {
	return c.parent
}

// WithChildren calls fn with a builder that spawns children of n, then returns n for chaining.
// n must belong to a Tree (returned by Tree.Spawn or ChildBuilder.Spawn).
func (n *Node) WithChildren(fn func(*ChildBuilder)) *Node {
	fn(&ChildBuilder{tree: n.owner(), parent: n})
	return n
}

// Roots returns the root nodes in spawn order. The slice must not be modified.
func (t *Tree) Roots() []*Node {
	return t.roots
}

// Len returns the number of spawned nodes.
func (t *Tree) Len() int {
	return t.count
}

// Walk visits every node depth-first in draw order (parent before children).
// Returning false from fn skips that node's children.
func (t *Tree) Walk(fn func(n *Node) bool) {
	for _, r := range t.roots {
		walk(r, fn)
	}
}

func walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		walk(c, fn)
	}
}

// FindByID returns the first node with the given id, or nil.
func (t *Tree) FindByID(id string) *Node {
	var found *Node
	t.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Clear removes every node.
func (t *Tree) Clear() {
	t.roots = nil
	t.count = 0
}

// newNode converts b and deep-copies its style so the spawned node shares nothing with the caller's bundle.
func (t *Tree) newNode(b Bundle) *Node {
	n := b.IntoNode()
	var s Style
	if err := copier.CopyWithOption(&s, &n.Style, copier.Option{DeepCopy: true}); err == nil {
		n.Style = s
	}
	n.tree = t
	t.count++
	return n
}

func (n *Node) owner() *Tree {
	if n.tree == nil {
		// Node built by hand: give it a private tree so children still count somewhere.
		n.tree = &Tree{}
	}
	return n.tree
}
