package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bennyboer/syntax-tree/pkg/render"
	"github.com/bennyboer/syntax-tree/pkg/style"
	"github.com/bennyboer/syntax-tree/pkg/tree"
)

func TestHTML(t *testing.T) {
	doc := tree.New[style.FontStyle]("Hello World")
	doc.Set(6, 11, style.Bold)
	doc.Set(4, 7, style.Underline)

	out := render.HTML(doc, render.FontTag)
	require.Equal(t, "<p>Hell<u>o </u><strong><u>W</u>orld</strong></p>", out)
}

func TestHTMLPlain(t *testing.T) {
	doc := tree.New[style.FontStyle]("Hello World")

	out := render.HTML(doc, render.FontTag)
	require.Equal(t, "<p>Hello World</p>", out)
}

func TestHTMLRootAttribute(t *testing.T) {
	doc := tree.New[style.FontStyle]("Hello World")
	doc.Set(0, 11, style.Italic)
	doc.Set(6, 11, style.Bold)

	out := render.HTML(doc, render.FontTag)
	require.Equal(t, "<p><em>Hello <strong>World</strong></em></p>", out)
}

func TestFontTag(t *testing.T) {
	require.Equal(t, "strong", render.FontTag(style.Bold))
	require.Equal(t, "em", render.FontTag(style.Italic))
	require.Equal(t, "u", render.FontTag(style.Underline))
}
