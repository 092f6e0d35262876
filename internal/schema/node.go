package schema

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"xlmapper/internal/grid"
)

// Position is an absolute 1-indexed spreadsheet coordinate.
// The root row may be 0 when the header starts on the first row.
type Position struct {
	Row int
	Col int
}

// Node is one field of a schema tree.
// A node exclusively owns its children; parent is a back-reference only.
type Node struct {
	Config FieldConfig

	parent   *Node
	children []*Node

	// memoized absolute position, nil when stale
	pos *Position
}

// New returns a detached node.
func New(cfg FieldConfig) *Node {
	return &Node{Config: cfg}
}

// Parent returns the parent node, nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the ordered children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	node := n
	for node.parent != nil {
		node = node.parent
	}

	return node
}

// Last returns the rightmost descendant, or the node itself when it is a leaf.
func (n *Node) Last() *Node {
	node := n
	for len(node.children) > 0 {
		node = node.children[len(node.children)-1]
	}

	return node
}

// AddChild appends child as the last child of n. A child that still belongs
// to another parent is detached from it first.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.Detach()
	}

	child.parent = n
	n.children = append(n.children, child)

	n.Root().Invalidate()
}

// Detach removes the node (with its subtree) from its parent.
// Detaching a root is a no-op.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}

	if i := p.indexOf(n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}

	n.parent = nil

	p.Root().Invalidate()
	n.Invalidate()
}

// SetOffset changes the declared offset, marks it explicit and invalidates
// the positions of the whole tree.
func (n *Node) SetOffset(o Offset) {
	n.Config.SetOffset(o)
	n.Root().Invalidate()
}

// Invalidate drops the memoized positions of n and all its descendants.
func (n *Node) Invalidate() {
	for d := range n.Walk() {
		d.pos = nil
	}
}

// Position returns the absolute position, computing it on first use after
// the last invalidation.
func (n *Node) Position() Position {
	if n.pos != nil {
		return *n.pos
	}

	var p Position

	if n.parent == nil {
		p = Position{Row: n.Config.Offset.Row, Col: n.Config.Offset.Col + 1}
	} else {
		parentPos := n.parent.Position()

		prevCol := parentPos.Col - 1
		if i := n.parent.indexOf(n); i > 0 {
			prevCol = n.parent.children[i-1].Last().Position().Col
		}

		p = Position{
			Row: parentPos.Row + n.Config.Offset.Row + 1,
			Col: prevCol + n.Config.Offset.Col + 1,
		}
	}

	n.pos = &p

	return p
}

// Row returns the absolute row.
func (n *Node) Row() int {
	return n.Position().Row
}

// Column returns the absolute column.
func (n *Node) Column() int {
	return n.Position().Col
}

// Skipped reports whether the node or one of its ancestors is marked skip.
func (n *Node) Skipped() bool {
	for node := n; node != nil; node = node.parent {
		if node.Config.Skip {
			return true
		}
	}

	return false
}

// Coordinate returns the A1-style cell name, or "N/A" for a root.
func (n *Node) Coordinate() string {
	if n.IsRoot() {
		return "N/A"
	}

	p := n.Position()

	return grid.CellName(p.Row, p.Col)
}

// Path returns the nodes from the root down to n.
func (n *Node) Path() []*Node {
	var path []*Node
	for node := n; node != nil; node = node.parent {
		path = append(path, node)
	}

	slices.Reverse(path)

	return path
}

// KeyPath returns the output keys from the root (exclusive) down to n.
func (n *Node) KeyPath() []string {
	path := n.Path()[1:]

	keys := make([]string, len(path))
	for i, node := range path {
		keys[i] = node.Config.OutputKey
	}

	return keys
}

// QualifiedName returns the dot-joined output keys from the root
// (exclusive) down to n. It is empty for a root.
func (n *Node) QualifiedName() string {
	return strings.Join(n.KeyPath(), ".")
}

// Walk iterates over n and its descendants in depth-first preorder.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, child := range n.children {
		if !child.walk(yield) {
			return false
		}
	}

	return true
}

// Leaves returns the childless non-root nodes in left-to-right order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node

	for d := range n.Walk() {
		if d.IsLeaf() && !d.IsRoot() {
			leaves = append(leaves, d)
		}
	}

	return leaves
}

// Cardinality returns the number of descendants.
func (n *Node) Cardinality() int {
	total := len(n.children)
	for _, child := range n.children {
		total += child.Cardinality()
	}

	return total
}

// Clone returns a deep copy of the subtree rooted at n. The copy is a root.
func (n *Node) Clone() *Node {
	c := &Node{Config: n.Config}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
	}

	for i, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children[i] = cc
	}

	return c
}

func (n *Node) String() string {
	if n.IsRoot() {
		return fmt.Sprintf("Node<%s (%s) -- ROOT>", n.Config.RawName, n.Coordinate())
	}

	return fmt.Sprintf("Node<%s (%s) '%s' -> '%s'>",
		n.Config.RawName, n.Coordinate(), n.Config.InputLabel, n.Config.OutputKey)
}

// DuplicateChildError is returned when two children of one node share a
// name or an output key.
type DuplicateChildError struct {
	Parent string
	// What names the shared property, "name" or "output key".
	What string
	Key  string
}

func (e *DuplicateChildError) Error() string {
	return fmt.Sprintf("node %q has two children with %s %q", e.Parent, e.What, e.Key)
}

// UniqueChildren returns a *DuplicateChildError for the first key shared
// by two children of n.
func (n *Node) UniqueChildren(what string, key func(*Node) string) error {
	seen := make(map[string]bool, len(n.children))

	for _, child := range n.children {
		k := key(child)
		if seen[k] {
			parent := n.Config.RawName
			if !n.IsRoot() {
				parent = n.QualifiedName()
			}

			return &DuplicateChildError{Parent: parent, What: what, Key: k}
		}

		seen[k] = true
	}

	return nil
}

func (n *Node) indexOf(child *Node) int {
	return slices.Index(n.children, child)
}
