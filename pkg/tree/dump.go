package tree

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Dump renders the subtree as one line per node in pre-order:
//
//	<indent>|-- '<text>' [<attrs>]
//
// where the indent is four spaces per level and the attributes are sorted
// ascending. The format is stable and meant for golden tests and debugging.
func Dump[T cmp.Ordered](n *Node[T]) string {
	var sb strings.Builder
	for node, depth := range n.PreOrder() {
		attrs := slices.Sorted(node.Attrs())
		rendered := make([]string, len(attrs))
		for i, attr := range attrs {
			rendered[i] = fmt.Sprint(attr)
		}

		fmt.Fprintf(&sb, "%s|-- '%s' [%s]\n",
			strings.Repeat(" ", depth*4), node.Text(), strings.Join(rendered, ", "))
	}
	return sb.String()
}

// DumpTree renders the whole tree, see [Dump].
func DumpTree[T cmp.Ordered](t *Tree[T]) string {
	return Dump(t.Root())
}
