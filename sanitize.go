package htmlscrub

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Sanitize parses input with the HTML5 fragment rules, filters the tree
// through p, and serializes the result. It never fails: malformed markup
// is recovered exactly the way a browser would recover it, then filtered
// like any other structure. If p is nil, [DefaultPolicy] is used.
//
// Sanitize is pure and safe for concurrent use; the only shared state is
// the read-only Policy.
func Sanitize(input string, p *Policy) string {
	if p == nil {
		p = DefaultPolicy()
	}
	return RenderString(Filter(ParseFragment(input), p))
}

// SanitizeBytes is like [Sanitize] for a byte slice.
func SanitizeBytes(b []byte, p *Policy) []byte {
	return []byte(Sanitize(string(b), p))
}

// SanitizeReader reads HTML from r, applies p, and returns the sanitized
// fragment. Invalid UTF-8 in the stream is replaced with U+FFFD. The
// only possible error is an I/O error from r.
func SanitizeReader(r io.Reader, p *Policy) (string, error) {
	if p == nil {
		p = DefaultPolicy()
	}
	root, err := ParseFragmentReader(r)
	if err != nil {
		return "", err
	}
	return RenderString(Filter(root, p)), nil
}

// StripTags removes all markup and returns the concatenated text
// content. Entity references are decoded.
func StripTags(input string) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(ParseFragment(input))
	return sb.String()
}
