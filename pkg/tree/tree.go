package tree

import (
	"fmt"
	"iter"

	"github.com/bennyboer/syntax-tree/internal/debug"
)

// Tree is a styled-text document: a text buffer overlaid with range-scoped
// attributes, kept in a canonical tree shape suitable for rendering.
//
// A tree is not safe for concurrent use. Listeners run synchronously on the
// mutating goroutine and must not call back into a mutating operation.
type Tree[T comparable] struct {
	root   *Node[T]
	events *dispatcher[T]
}

// New creates a tree over the given text with no styling: a single root
// leaf.
func New[T comparable](text string) *Tree[T] {
	events := new(dispatcher[T])
	return &Tree[T]{
		root:   newRoot(text, events),
		events: events,
	}
}

// Root returns the root node.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Length returns the byte length of the document text.
func (t *Tree[T]) Length() int { return t.root.Length() }

// Text returns the document text.
func (t *Tree[T]) Text() string { return t.root.Text() }

// Listen registers a listener for change events and returns a handle for
// deregistration. Events fire synchronously at each local mutation point.
func (t *Tree[T]) Listen(fn Listener[T]) Handle {
	return t.events.listen(fn)
}

// Unlisten removes a previously registered listener, reporting whether the
// handle was known.
func (t *Tree[T]) Unlisten(h Handle) bool {
	return t.events.unlisten(h)
}

// Set styles [start, end) with attr.
func (t *Tree[T]) Set(start, end int, attr T) {
	t.checkRange(start, end)
	rep := t.root.Set(start, end, attr)
	debug.Assert(rep == nil, "root must restructure in place")
}

// Unset removes attr from every node intersecting [start, end).
func (t *Tree[T]) Unset(start, end int, attr T) {
	t.checkRange(start, end)
	rep := t.root.Unset(start, end, attr)
	debug.Assert(rep == nil, "root must restructure in place")
}

// Insert inserts a character at byte position idx. The character adopts the
// styling in place at that position.
func (t *Tree[T]) Insert(idx int, ch rune) {
	t.checkIndex(idx)
	t.root.Insert(idx, ch)
}

// InsertStr inserts s at byte position idx.
func (t *Tree[T]) InsertStr(idx int, s string) {
	t.checkIndex(idx)
	t.root.InsertStr(idx, s)
}

// Push appends a character to the document.
func (t *Tree[T]) Push(ch rune) { t.root.Push(ch) }

// PushStr appends s to the document.
func (t *Tree[T]) PushStr(s string) { t.root.PushStr(s) }

// Remove deletes count bytes starting at idx.
func (t *Tree[T]) Remove(idx, count int) {
	if length := t.Length(); idx < 0 || count < 0 || idx+count > length {
		panic(fmt.Sprintf("syntaxtree: cannot remove range [%d, %d) from document of length %d", idx, idx+count, length))
	}
	if count == 0 {
		return
	}
	t.root.Remove(idx, count)
}

// Pop removes the last byte of the document.
func (t *Tree[T]) Pop() {
	length := t.Length()
	if length == 0 {
		panic("syntaxtree: cannot pop from an empty document")
	}
	t.root.Remove(length-1, 1)
}

// Clear empties the document, leaving a single empty leaf at the root.
// With keepAttributes the root keeps its attribute set; attributes of
// descendants vanish with them either way.
func (t *Tree[T]) Clear(keepAttributes bool) {
	for len(t.root.children) > 0 {
		t.root.removeChild(0)
	}
	t.root.children = nil
	t.root.text = ""
	t.root.emit(TextChanged[T]{Node: t.root})

	if !keepAttributes && t.root.attrs.Len() > 0 {
		t.root.attrs.Clear()
		t.root.emit(AttributesChanged[T]{Node: t.root})
	}
}

// PreOrder returns a lazy depth-first pre-order iterator over all nodes,
// yielding each node with its depth. See [Node.PreOrder].
func (t *Tree[T]) PreOrder() iter.Seq2[*Node[T], int] {
	return t.root.PreOrder()
}

// Leaves returns an iterator over the document's text fragments from left
// to right. See [Node.Leaves].
func (t *Tree[T]) Leaves() iter.Seq[*Node[T]] {
	return t.root.Leaves()
}

func (t *Tree[T]) checkRange(start, end int) {
	if length := t.Length(); start < 0 || start >= end || end > length {
		panic(fmt.Sprintf("syntaxtree: invalid range [%d, %d) for document of length %d", start, end, length))
	}
}

func (t *Tree[T]) checkIndex(idx int) {
	if length := t.Length(); idx < 0 || idx > length {
		panic(fmt.Sprintf("syntaxtree: cannot insert at position %d when document has length %d", idx, length))
	}
}
