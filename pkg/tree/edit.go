package tree

import "fmt"

// Insert inserts a character at byte position idx. The character adopts the
// styling of the position it lands in: the tree shape never changes, only
// the text of the leaf owning the position grows. A position on the border
// of two leaves goes to the left one.
func (n *Node[T]) Insert(idx int, ch rune) {
	n.InsertStr(idx, string(ch))
}

// InsertStr inserts s at byte position idx. See [Node.Insert].
func (n *Node[T]) InsertStr(idx int, s string) {
	if n.IsLeaf() {
		if idx < 0 || idx > len(n.text) {
			panic(fmt.Sprintf("syntaxtree: cannot insert at position %d when underlying text has length %d", idx, len(n.text)))
		}
		n.text = n.text[:idx] + s + n.text[idx:]
		n.emit(TextChanged[T]{Node: n})
		return
	}

	offset := 0
	for _, child := range n.children {
		length := child.Length()
		if idx <= offset+length {
			child.InsertStr(idx-offset, s)
			return
		}
		offset += length
	}

	panic(fmt.Sprintf("syntaxtree: cannot insert at position %d when underlying text has length %d", idx, offset))
}

// Push appends a character to the covered text. The character adopts the
// styling of the rightmost leaf.
func (n *Node[T]) Push(ch rune) {
	n.PushStr(string(ch))
}

// PushStr appends s to the covered text. See [Node.Push].
func (n *Node[T]) PushStr(s string) {
	if n.IsLeaf() {
		n.text += s
		n.emit(TextChanged[T]{Node: n})
		return
	}
	n.children[len(n.children)-1].PushStr(s)
}

// Remove deletes count bytes starting at idx.
//
// The first result reports whether the node lost all of its text and
// should be dropped by the caller; the second asks the caller to regroup
// because a collapse happened somewhere below.
func (n *Node[T]) Remove(idx, count int) (empty, needsRegroup bool) {
	if n.IsLeaf() {
		if idx < 0 || count < 0 || idx+count > len(n.text) {
			panic(fmt.Sprintf("syntaxtree: cannot remove range [%d, %d) from text of length %d", idx, idx+count, len(n.text)))
		}
		n.text = n.text[:idx] + n.text[idx+count:]
		if len(n.text) > 0 {
			n.emit(TextChanged[T]{Node: n})
		}
		return len(n.text) == 0, false
	}

	// Offsets below stay in pre-removal coordinates: each child's length is
	// taken before the child shrinks, and idx advances past what was
	// removed from it.
	offset := 0
	var removeLater []int
	mayRegroup := false
	for i, child := range n.children {
		length := child.Length()

		if idx >= offset && idx < offset+length {
			maxEnd := offset + length
			end := idx + count
			if end > maxEnd {
				end = maxEnd
			}
			removed := end - idx

			childEmpty, childRegroup := child.Remove(idx-offset, removed)
			if childEmpty {
				removeLater = append(removeLater, i)
			}
			mayRegroup = mayRegroup || childRegroup

			if idx+count <= maxEnd {
				break
			}
			idx += removed
			count -= removed
		}

		offset += length
	}

	for shift, i := range removeLater {
		n.removeChild(i - shift)
	}

	n.mergeAdjacentPlainLeaves()

	switch {
	case len(n.children) == 0:
		n.children = nil
		n.text = ""
		return true, false

	case len(n.children) == 1:
		child := n.children[0]
		if child.IsLeaf() {
			n.collapseSingleLeaf()
			return n.Length() == 0, true
		}
		if child.attrs.Equal(&n.attrs) {
			n.mergeSingleChild()
			return n.Length() == 0, true
		}
		return n.Length() == 0, false

	default:
		if mayRegroup {
			n.regroup()
		}
		return n.Length() == 0, false
	}
}
