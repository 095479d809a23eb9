package htmlscrub

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Transformer receives a kept element node after attribute filtering and
// may mutate it in place (e.g., adding or removing attributes).
// Returning nil removes the node and its subtree from the output.
type Transformer func(n *html.Node) *html.Node

// urlAttrs are the attribute names whose values are treated as URLs and
// checked against the policy's scheme allowlist.
var urlAttrs = map[string]bool{
	"href":       true,
	"src":        true,
	"cite":       true,
	"action":     true,
	"formaction": true,
	"poster":     true,
}

func isURLAttr(tag, attr string) bool {
	return urlAttrs[attr] || (tag == "object" && attr == "data")
}

// Filter walks root depth-first and returns a new tree containing only
// the content permitted by p. Sibling order is preserved; disallowed
// elements are handled according to p's disposal mode; comments never
// survive. The input tree is not modified, and the output tree shares no
// nodes with it.
func Filter(root *html.Node, p *Policy) *html.Node {
	if p == nil {
		p = DefaultPolicy()
	}
	out := &html.Node{Type: root.Type, Data: root.Data, DataAtom: root.DataAtom}
	f := filterPass{policy: p}
	f.children(out, root, 0)
	return out
}

type filterPass struct {
	policy *Policy
}

func (f *filterPass) children(dst, src *html.Node, depth int) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		for _, n := range f.node(c, depth+1) {
			dst.AppendChild(n)
		}
	}
}

// node maps one source node to zero or more output nodes. Escape
// disposal is the only case that yields more than one: the literal open
// tag, the filtered children, and the literal close tag become siblings.
func (f *filterPass) node(n *html.Node, depth int) []*html.Node {
	switch n.Type {
	case html.ElementNode:
		return f.element(n, depth)
	case html.TextNode:
		// Character references were decoded by the parser; the
		// serializer re-escapes on the way out.
		return []*html.Node{{Type: html.TextNode, Data: n.Data}}
	case html.CommentNode:
		// Comments can change how downstream parsers interpret the
		// surrounding markup, so they never survive.
		return nil
	case html.DoctypeNode, html.DocumentNode, html.RawNode, html.ErrorNode:
		return nil
	default:
		return nil
	}
}

func (f *filterPass) element(n *html.Node, depth int) []*html.Node {
	p := f.policy
	tag := strings.ToLower(n.Data)
	tooDeep := p.maxDepth > 0 && depth > p.maxDepth

	if !p.TagAllowed(tag) || tooDeep {
		if p.disposal == DisposalEscape {
			return f.escape(n, tag, depth)
		}
		return nil
	}

	el := &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  n.DataAtom,
		Namespace: n.Namespace,
	}
	el.Attr = f.attributes(tag, n.Attr)
	if p.linkRel != "" && tag == "a" {
		// Compile guarantees rel is not allowlisted here, so the
		// attribute cannot already be present.
		el.Attr = append(el.Attr, html.Attribute{Key: "rel", Val: p.linkRel})
	}
	for _, t := range p.transformers {
		if el = t(el); el == nil {
			return nil
		}
	}
	f.children(el, n, depth)
	return []*html.Node{el}
}

// escape renders the element's own tags as literal text nodes with the
// filtered children kept between them. The raw tag text is stored
// undecorated; the serializer escapes it like any other text.
func (f *filterPass) escape(n *html.Node, tag string, depth int) []*html.Node {
	nodes := []*html.Node{{Type: html.TextNode, Data: rawOpenTag(n)}}

	holder := &html.Node{Type: html.DocumentNode}
	f.children(holder, n, depth)
	for c := holder.FirstChild; c != nil; {
		next := c.NextSibling
		holder.RemoveChild(c)
		nodes = append(nodes, c)
		c = next
	}

	if !isVoidElement(tag) {
		nodes = append(nodes, &html.Node{Type: html.TextNode, Data: "</" + tag + ">"})
	}
	return nodes
}

func (f *filterPass) attributes(tag string, attrs []html.Attribute) []html.Attribute {
	p := f.policy
	var out []html.Attribute
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if seen[key] {
			// Duplicate attribute: the HTML5 tokenizer keeps the first
			// occurrence, so the filter does too.
			continue
		}
		seen[key] = true

		if key == "class" && p.classes[tag] != nil {
			if val := filterClasses(a.Val, p.classes[tag]); val != "" {
				out = append(out, html.Attribute{Namespace: a.Namespace, Key: key, Val: val})
			}
			continue
		}
		if !p.AttributeAllowed(tag, key) {
			continue
		}
		if isURLAttr(tag, key) && !p.urlAllowed(a.Val) {
			// Only the attribute is dropped; the element stays.
			continue
		}
		out = append(out, html.Attribute{Namespace: a.Namespace, Key: key, Val: a.Val})
	}
	return out
}

// urlAllowed reports whether the already entity-decoded attribute value
// carries an allowed scheme. Control characters are removed first, since
// browsers tolerate them inside URLs ("jav\tascript:" still runs).
// Anything net/url cannot parse is rejected.
func (p *Policy) urlAllowed(raw string) bool {
	v := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return !p.denyRelative
	}
	return p.schemes[strings.ToLower(u.Scheme)]
}

func filterClasses(val string, allowed map[string]bool) string {
	var kept []string
	for _, cl := range strings.Fields(val) {
		if allowed[cl] {
			kept = append(kept, cl)
		}
	}
	return strings.Join(kept, " ")
}

// rawOpenTag reconstructs the element's opening tag, original attributes
// included, for escape disposal.
func rawOpenTag(n *html.Node) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(strings.ToLower(n.Data))
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		if a.Namespace != "" {
			sb.WriteString(a.Namespace)
			sb.WriteByte(':')
		}
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Val)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}
