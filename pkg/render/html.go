// Package render turns a styled-text tree into markup.
package render

import (
	"github.com/beevik/etree"

	"github.com/bennyboer/syntax-tree/pkg/style"
	"github.com/bennyboer/syntax-tree/pkg/tree"
)

// HTML renders the document as a paragraph of nested inline elements. Every
// attribute on a node wraps the node's content in the element named by tag;
// leaves contribute their text.
func HTML[T comparable](t *tree.Tree[T], tag func(T) string) string {
	doc := etree.NewDocument()
	p := doc.CreateElement("p")
	htmlNode(p, t.Root(), tag)

	s, err := doc.WriteToString()
	if err != nil {
		// The document was built in memory from valid elements; writing it
		// to a string cannot fail.
		panic(err)
	}
	return s
}

func htmlNode[T comparable](parent *etree.Element, n *tree.Node[T], tag func(T) string) {
	el := parent
	for attr := range n.Attrs() {
		el = el.CreateElement(tag(attr))
	}

	if n.IsLeaf() {
		el.CreateText(n.Text())
		return
	}
	for _, child := range n.Children() {
		htmlNode(el, child, tag)
	}
}

// FontTag maps the built-in font styles onto their HTML elements.
func FontTag(f style.FontStyle) string {
	switch f {
	case style.Bold:
		return "strong"
	case style.Italic:
		return "em"
	default:
		return "u"
	}
}
