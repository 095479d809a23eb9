package htmlscrub

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/unicode"
)

// fragmentContext is the element the input is parsed inside of. Using a
// div body context gives the same tree a browser builds for a snippet
// destined for a block container: implicit closing, foster parenting,
// and the rest of the HTML5 recovery rules all apply.
func fragmentContext() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
}

// ParseFragment parses input with the HTML5 fragment parsing rules and
// returns a fresh fragment root owning the parsed children. Fragment
// parsing is total: any input yields some tree, so there is no error to
// return. No surrounding <html> or <body> is required.
func ParseFragment(input string) *html.Node {
	root, err := ParseFragmentReader(strings.NewReader(input))
	if err != nil {
		// A strings.Reader cannot fail and the parser recovers from any
		// token stream, so this branch is unreachable; keep the function
		// total regardless.
		return &html.Node{Type: html.DocumentNode}
	}
	return root
}

// ParseFragmentReader is like [ParseFragment] but reads the input from
// r. The stream is decoded as UTF-8 with invalid byte sequences replaced
// by U+FFFD. The only possible error is an I/O error from r itself.
func ParseFragmentReader(r io.Reader) (*html.Node, error) {
	nodes, err := html.ParseFragment(unicode.UTF8.NewDecoder().Reader(r), fragmentContext())
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}
