package htmlscrub

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Render writes root back out as an HTML fragment. Text content and
// attribute values are escaped so the output can be embedded directly in
// a larger document and reparses to the same tree the filter produced.
// The only possible error is a write error from w.
func Render(w io.Writer, root *html.Node) error {
	var sb strings.Builder
	renderNode(&sb, root)
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderString renders root to a string.
func RenderString(root *html.Node) string {
	var sb strings.Builder
	renderNode(&sb, root)
	return sb.String()
}

func renderNode(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(html.EscapeString(n.Data))

	case html.ElementNode:
		sb.WriteByte('<')
		sb.WriteString(n.Data)
		for _, a := range n.Attr {
			sb.WriteByte(' ')
			if a.Namespace != "" {
				sb.WriteString(a.Namespace)
				sb.WriteByte(':')
			}
			sb.WriteString(a.Key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Val))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		if isVoidElement(n.Data) {
			// Void elements take no children and no close tag.
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(sb, c)
		}
		sb.WriteString("</")
		sb.WriteString(n.Data)
		sb.WriteByte('>')

	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(sb, c)
		}

	case html.CommentNode, html.DoctypeNode:
		// Never present in a filtered tree; dropped when rendering a raw
		// parse tree as well.

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(sb, c)
		}
	}
}

func isVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
