package tree

import (
	"github.com/bennyboer/syntax-tree/internal/debug"
)

// Unset removes attr over [start, end) from this subtree.
//
// Removal works at node granularity: every node intersecting the range
// loses the attribute. When an internal node carrying the attribute spans
// beyond the range, the parts of its subtree outside the range are styled
// again afterwards so they keep the attribute. A node that ends up without
// attributes and without a reason to exist returns its children for the
// caller to splice in; nil means the node stays.
func (n *Node[T]) Unset(start, end int, attr T) []*Node[T] {
	n.checkRange(start, end)

	if n.IsLeaf() {
		if n.attrs.Remove(attr) {
			n.emit(AttributesChanged[T]{Node: n})
		}
		return nil
	}

	length := n.Length()
	var residual [][2]int
	if n.attrs.Remove(attr) {
		n.emit(AttributesChanged[T]{Node: n})

		// The attribute covered this node's whole span; outside the unset
		// range it has to survive.
		if start > 0 {
			residual = append(residual, [2]int{0, start})
		}
		if end < length {
			residual = append(residual, [2]int{end, length})
		}
	}

	n.unsetChildren(start, end, attr)

	for _, r := range residual {
		debug.Log("unset", "restoring attribute on residual [%d, %d)", r[0], r[1])
		if rep := n.Set(r[0], r[1], attr); rep != nil {
			// Only reachable when the node collapsed to a plain leaf: keep
			// the pieces as children so the caller can still splice this
			// node away below.
			n.text = ""
			for _, piece := range rep {
				n.addChild(piece)
			}
		}
	}

	if !n.root && n.attrs.Len() == 0 && !n.IsLeaf() {
		children := n.children
		n.children = nil
		return children
	}
	return nil
}

// unsetChildren recurses the removal into every child intersecting
// [start, end) and restores the invariants among the children afterwards:
// useless nodes are replaced by their children, neighboring unformatted
// leaves merge, a sole leaf child is absorbed, and the rest regroups.
func (n *Node[T]) unsetChildren(start, end int, attr T) {
	type splice struct {
		idx   int
		nodes []*Node[T]
	}
	var replaceLater []splice

	offset := 0
	for i, child := range n.children {
		length := child.Length()

		if offset < end && start < offset+length {
			childStart := start - offset
			if childStart < 0 {
				childStart = 0
			}
			childEnd := end - offset
			if childEnd > length {
				childEnd = length
			}

			if rep := child.Unset(childStart, childEnd, attr); rep != nil {
				replaceLater = append(replaceLater, splice{i, rep})
			}
		}

		offset += length
	}

	shift := 0
	for _, r := range replaceLater {
		idx := r.idx + shift
		n.removeChild(idx)
		for j, node := range r.nodes {
			n.insertChild(idx+j, node)
		}
		shift += len(r.nodes) - 1
	}

	n.mergeAdjacentPlainLeaves()

	switch {
	case len(n.children) == 1 && n.children[0].IsLeaf():
		n.collapseSingleLeaf()
	case len(n.children) == 1 && n.children[0].attrs.Equal(&n.attrs):
		n.mergeSingleChild()
	case len(n.children) > 1:
		n.regroup()
	}
}
