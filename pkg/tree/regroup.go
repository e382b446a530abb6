package tree

import (
	"strings"

	"github.com/bennyboer/syntax-tree/internal/debug"
)

// regroup canonicalizes the node's child list: the longest run of two or
// more consecutive siblings sharing an attribute is factored under a fresh
// parent carrying that attribute, until no such run is left. Ties go to the
// earliest run; attribute sets iterate in insertion order, so the result is
// deterministic for a given operation history.
func (n *Node[T]) regroup() {
	for {
		attr, start, count := n.findMaxRun()
		if count < 2 {
			return
		}
		debug.Log("regroup", "factoring run of %d siblings at %d", count, start)

		removed := make([]*Node[T], 0, count)
		for i := 0; i < count; i++ {
			removed = append(removed, n.removeChild(start))
		}
		n.insertChild(start, n.makeGroup(attr, removed))

		// Factoring may leave a lone child that styles the node's whole
		// span the same way this node does.
		if len(n.children) == 1 && n.children[0].attrs.Equal(&n.attrs) {
			n.mergeSingleChild()
		}
	}
}

// findMaxRun locates the longest run of consecutive children that all carry
// one attribute. count is 1 when no run of at least two exists.
func (n *Node[T]) findMaxRun() (attr T, start, count int) {
	count = 1
	for i, child := range n.children {
		for a := range child.attrs.All() {
			// Runs are only measured from their first member.
			if i > 0 && n.children[i-1].HasAttr(a) {
				continue
			}

			k := 1
			for j := i + 1; j < len(n.children) && n.children[j].HasAttr(a); j++ {
				k++
			}
			if k > count {
				attr, start, count = a, i, k
			}
		}
	}
	return attr, start, count
}

// makeGroup builds the new parent for a factored run: attr is stripped from
// every removed sibling, siblings left useless by the strip are expanded
// into their children, and when nothing but unformatted leaves remains they
// are compacted into a single text fragment.
func (n *Node[T]) makeGroup(attr T, removed []*Node[T]) *Node[T] {
	group := n.spawnNode()

	var moved []*Node[T]
	for _, child := range removed {
		if length := child.Length(); child.HasAttr(attr) || !child.IsLeaf() {
			if rep := child.Unset(0, length, attr); rep != nil {
				moved = append(moved, rep...)
				continue
			}
		}
		moved = append(moved, child)
	}

	allPlain := true
	for _, m := range moved {
		if !m.IsLeaf() || m.attrs.Len() > 0 {
			allPlain = false
			break
		}
	}

	if allPlain {
		var sb strings.Builder
		for _, m := range moved {
			sb.WriteString(m.text)
		}
		group.text = sb.String()
	} else {
		for _, m := range moved {
			group.addChild(m)
		}
		group.mergeAdjacentPlainLeaves()
		group.regroup()
	}

	group.attrs.Add(attr)
	return group
}
