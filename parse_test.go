package htmlscrub_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/jmtobin/htmlscrub"
)

func TestParseFragment_Totality(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<",
		"<<<>>>",
		"</b>",
		"<p><b><i>never closed",
		"<di v><x!></p weird>",
		"\x00\x01garbage\xff<b>",
		strings.Repeat("<div>", 200),
	}
	for _, in := range inputs {
		root := htmlscrub.ParseFragment(in)
		require.NotNil(t, root, "input %q", in)
		assert.Equal(t, html.DocumentNode, root.Type)
		// Rendering the recovered tree must not panic either.
		_ = htmlscrub.RenderString(root)
	}
}

func TestParseFragment_NoDocumentWrapperNeeded(t *testing.T) {
	root := htmlscrub.ParseFragment(`<body><p>x</p></body>`)
	assert.Equal(t, `<p>x</p>`, htmlscrub.RenderString(root),
		"document-level tags are ignored in a fragment context")
}

func TestParseFragment_FragmentContextRecovery(t *testing.T) {
	// A stray <td> outside a table is dropped by the tree builder; its
	// text is kept. This is browser behavior, not sanitizer policy.
	root := htmlscrub.ParseFragment(`<td>x</td>`)
	assert.Equal(t, `x`, htmlscrub.RenderString(root))
}

func TestParseFragment_Structure(t *testing.T) {
	root := htmlscrub.ParseFragment(`a<b>c</b>`)

	first := root.FirstChild
	require.NotNil(t, first)
	assert.Equal(t, html.TextNode, first.Type)
	assert.Equal(t, "a", first.Data)

	second := first.NextSibling
	require.NotNil(t, second)
	assert.Equal(t, html.ElementNode, second.Type)
	assert.Equal(t, "b", second.Data)
	assert.Equal(t, root, second.Parent, "the fragment root owns the parsed children")

	inner := second.FirstChild
	require.NotNil(t, inner)
	assert.Equal(t, html.TextNode, inner.Type)
	assert.Equal(t, "c", inner.Data)
}

func TestParseFragment_DecodesCharacterReferences(t *testing.T) {
	root := htmlscrub.ParseFragment(`&amp;&lt;&#65;`)
	first := root.FirstChild
	require.NotNil(t, first)
	assert.Equal(t, "&<A", first.Data)
}

func TestParseFragmentReader_ReplacesInvalidUTF8(t *testing.T) {
	root, err := htmlscrub.ParseFragmentReader(strings.NewReader("ab\xffcd"))
	require.NoError(t, err)
	got := htmlscrub.RenderString(root)
	assert.Contains(t, got, "ab")
	assert.Contains(t, got, "�")
	assert.Contains(t, got, "cd")
}
