// Package tree implements a styled-text document tree.
//
// A document is a plain byte string overlaid with attributes: every byte
// position carries the union of the attribute sets of the nodes covering
// it. Leaves hold text fragments, internal nodes hold attributes and
// children, and the concatenation of the leaf fragments in pre-order is the
// document text. Mutations keep the tree canonical: no empty nodes, no
// internal node without attributes (the root aside), no attribute restated
// below a node that already carries it, and maximal runs of siblings
// sharing an attribute are factored under a common parent.
//
// All indices are byte positions; callers make sure they land on character
// boundaries.
package tree

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"

	"github.com/bennyboer/syntax-tree/pkg/style"
)

// Node is one node of the document tree: either a leaf holding a text
// fragment, or an internal node holding an ordered list of children. Both
// carry a set of attributes that applies to every byte the node covers.
type Node[T comparable] struct {
	id       string
	children []*Node[T]
	attrs    style.Set[T]
	text     string
	root     bool
	events   *dispatcher[T]
}

// NewLeaf creates a detached leaf node holding text.
func NewLeaf[T comparable](text string) *Node[T] {
	return &Node[T]{id: uuid.NewString(), text: text}
}

// NewNode creates a detached node without text. It presents as a leaf with
// empty text until children are added.
func NewNode[T comparable]() *Node[T] {
	return &Node[T]{id: uuid.NewString()}
}

func newRoot[T comparable](text string, events *dispatcher[T]) *Node[T] {
	return &Node[T]{id: uuid.NewString(), text: text, root: true, events: events}
}

// spawnLeaf creates a leaf that reports to the same listeners as n.
func (n *Node[T]) spawnLeaf(text string) *Node[T] {
	return &Node[T]{id: uuid.NewString(), text: text, events: n.events}
}

// spawnNode creates a childless node that reports to the same listeners as n.
func (n *Node[T]) spawnNode() *Node[T] {
	return &Node[T]{id: uuid.NewString(), events: n.events}
}

// ID returns the stable identifier assigned at creation. It only shows up
// in change events and debug output; no tree logic depends on it.
func (n *Node[T]) ID() string { return n.id }

// IsLeaf reports whether the node holds text rather than children.
func (n *Node[T]) IsLeaf() bool { return len(n.children) == 0 }

// Text returns the text covered by the node: its own fragment for a leaf,
// the concatenation of the children's text otherwise.
func (n *Node[T]) Text() string {
	if n.IsLeaf() {
		return n.text
	}

	var sb strings.Builder
	sb.Grow(n.Length())
	for _, child := range n.children {
		sb.WriteString(child.Text())
	}
	return sb.String()
}

// Length returns the byte length of the covered text.
func (n *Node[T]) Length() int {
	if n.IsLeaf() {
		return len(n.text)
	}

	length := 0
	for _, child := range n.children {
		length += child.Length()
	}
	return length
}

// ChildCount returns the number of children under this node.
func (n *Node[T]) ChildCount() int { return len(n.children) }

// Children returns the node's children, left to right. The slice is shared
// with the node and must not be modified.
func (n *Node[T]) Children() []*Node[T] { return n.children }

// Attrs returns an iterator over the node's attributes in insertion order.
func (n *Node[T]) Attrs() iter.Seq[T] { return n.attrs.All() }

// AttrCount returns the number of attributes on the node.
func (n *Node[T]) AttrCount() int { return n.attrs.Len() }

// HasAttr reports whether the node itself carries attr. Inherited
// attributes of ancestors do not count.
func (n *Node[T]) HasAttr(attr T) bool { return n.attrs.Contains(attr) }

// AddChild appends child to the node's child list.
func (n *Node[T]) AddChild(child *Node[T]) {
	child.inherit(n.events)
	n.addChild(child)
}

func (n *Node[T]) inherit(events *dispatcher[T]) {
	if events == nil {
		return
	}
	n.events = events
	for _, child := range n.children {
		child.inherit(events)
	}
}

func (n *Node[T]) emit(ev Event[T]) {
	if n.events != nil {
		n.events.emit(ev)
	}
}

func (n *Node[T]) addChild(child *Node[T]) {
	n.children = append(n.children, child)
	n.emit(NodeAdded[T]{Parent: n, AddedIdx: len(n.children) - 1})
}

func (n *Node[T]) insertChild(idx int, child *Node[T]) {
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	n.emit(NodeAdded[T]{Parent: n, AddedIdx: idx})
}

func (n *Node[T]) removeChild(idx int) *Node[T] {
	child := n.children[idx]
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	n.emit(NodeRemoved[T]{Parent: n, RemovedIdx: idx})
	return child
}

// mergeAdjacentPlainLeaves replaces every run of two or more neighboring
// unformatted leaves by a single leaf holding the concatenated text.
func (n *Node[T]) mergeAdjacentPlainLeaves() {
	isPlainLeaf := func(c *Node[T]) bool { return c.IsLeaf() && c.attrs.Len() == 0 }

	for i := 0; i < len(n.children); i++ {
		if !isPlainLeaf(n.children[i]) {
			continue
		}

		j := i + 1
		for j < len(n.children) && isPlainLeaf(n.children[j]) {
			j++
		}
		if j-i < 2 {
			continue
		}

		var sb strings.Builder
		for k := i; k < j; k++ {
			sb.WriteString(n.children[k].text)
		}
		for k := i; k < j; k++ {
			n.removeChild(i)
		}
		n.insertChild(i, n.spawnLeaf(sb.String()))
	}
}

// collapseSingleLeaf absorbs the node's only child, a leaf, making the node
// a leaf with the child's text and the union of both attribute sets.
func (n *Node[T]) collapseSingleLeaf() {
	child := n.removeChild(0)
	n.children = nil
	n.text = child.text

	gained := false
	for attr := range child.attrs.All() {
		if n.attrs.Add(attr) {
			gained = true
		}
	}
	if gained {
		n.emit(AttributesChanged[T]{Node: n})
	}
}

// mergeSingleChild absorbs the node's only child, leaf or internal, unioning
// the child's attributes into the node.
func (n *Node[T]) mergeSingleChild() {
	child := n.removeChild(0)
	if child.IsLeaf() {
		n.children = nil
		n.text = child.text
	} else {
		for i, c := range child.children {
			n.insertChild(i, c)
		}
	}

	gained := false
	for attr := range child.attrs.All() {
		if n.attrs.Add(attr) {
			gained = true
		}
	}
	if gained {
		n.emit(AttributesChanged[T]{Node: n})
	}
}

func (n *Node[T]) checkRange(start, end int) {
	if start < 0 || start >= end || end > n.Length() {
		panic(fmt.Sprintf("syntaxtree: invalid range [%d, %d) for text of length %d", start, end, n.Length()))
	}
}
