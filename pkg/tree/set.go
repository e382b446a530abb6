package tree

import (
	"github.com/bennyboer/syntax-tree/internal/debug"
)

// affected describes one child touched by a range operation, with the
// operation's range translated into the child's coordinates.
type affected struct {
	idx        int
	start, end int
	enclosed   bool
}

// Set applies attr to [start, end) of the text covered by this node.
//
// The node restructures itself in place where it can. When the node has to
// be replaced in its parent (a plain leaf splitting into pieces), the
// pieces are returned and the caller splices them in; nil means the node
// was mutated in place.
func (n *Node[T]) Set(start, end int, attr T) []*Node[T] {
	n.checkRange(start, end)

	// The span is already styled by this node.
	if n.attrs.Contains(attr) {
		return nil
	}

	if n.IsLeaf() {
		return n.setOnLeaf(start, end, attr)
	}
	n.setOnInternal(start, end, attr)
	return nil
}

func (n *Node[T]) setOnLeaf(start, end int, attr T) []*Node[T] {
	length := len(n.text)

	if start == 0 && end == length {
		n.attrs.Add(attr)
		n.emit(AttributesChanged[T]{Node: n})
		return nil
	}

	var pieces []*Node[T]
	if start > 0 {
		pieces = append(pieces, n.spawnLeaf(n.text[:start]))
	}
	mid := n.spawnLeaf(n.text[start:end])
	mid.attrs.Add(attr)
	pieces = append(pieces, mid)
	if end < length {
		pieces = append(pieces, n.spawnLeaf(n.text[end:]))
	}

	if n.attrs.Len() == 0 && !n.root {
		return pieces
	}

	n.text = ""
	for _, piece := range pieces {
		n.addChild(piece)
	}
	return nil
}

func (n *Node[T]) setOnInternal(start, end int, attr T) {
	if start == 0 && end == n.Length() {
		// The attribute now applies to the whole subtree; any copy below
		// would be redundant.
		n.unsetChildren(0, end, attr)
		n.attrs.Add(attr)
		n.emit(AttributesChanged[T]{Node: n})
		return
	}

	hits := n.affectedChildren(start, end)
	debug.Log("set", "range [%d, %d) touches %d children", start, end, len(hits))

	// Factor completely enclosed neighbors under a fresh parent carrying
	// the attribute.
	first, count := enclosedRun(hits)
	if count >= 2 {
		removed := make([]*Node[T], 0, count)
		for i := 0; i < count; i++ {
			removed = append(removed, n.removeChild(first))
		}
		n.insertChild(first, n.makeGroup(attr, removed))

		rest := hits[:0]
		for _, hit := range hits {
			if hit.enclosed {
				continue
			}
			if hit.idx > first {
				hit.idx -= count - 1
			}
			rest = append(rest, hit)
		}
		hits = rest
	}

	// The remaining children are set recursively; a child that splits
	// itself apart hands back the pieces to splice in.
	type splice struct {
		idx   int
		nodes []*Node[T]
	}
	var replaceLater []splice
	for _, hit := range hits {
		if rep := n.children[hit.idx].Set(hit.start, hit.end, attr); rep != nil {
			replaceLater = append(replaceLater, splice{hit.idx, rep})
		}
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

	n.regroup()
}

// affectedChildren lists the children intersecting [start, end), each with
// the range clipped to the child's coordinates.
func (n *Node[T]) affectedChildren(start, end int) []affected {
	var hits []affected

	offset := 0
	for i, child := range n.children {
		length := child.Length()

		if start >= offset && start < offset+length {
			clipped := end - offset
			if clipped > length {
				clipped = length
			}
			hits = append(hits, affected{
				idx:      i,
				start:    start - offset,
				end:      clipped,
				enclosed: start == offset && clipped == length,
			})

			if end <= offset+length {
				break
			}
			start = offset + length
		}

		offset += length
	}

	return hits
}

// enclosedRun returns the child index of the first completely enclosed hit
// and how many enclosed hits follow it. Enclosed hits are always
// consecutive: only the outermost affected children can be partial.
func enclosedRun(hits []affected) (first, count int) {
	for _, hit := range hits {
		if !hit.enclosed {
			continue
		}
		if count == 0 {
			first = hit.idx
		}
		count++
	}
	return first, count
}
