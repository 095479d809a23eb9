package htmlscrub_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/jmtobin/htmlscrub"
)

func TestRender_VoidElements(t *testing.T) {
	root := htmlscrub.ParseFragment(`<br><hr><img src="x"><wbr>`)
	got := htmlscrub.RenderString(root)
	assert.Equal(t, `<br><hr><img src="x"><wbr>`, got, "void elements take no close tag")
}

func TestRender_EscapesTextAndAttributes(t *testing.T) {
	root := &html.Node{Type: html.DocumentNode}
	el := &html.Node{
		Type: html.ElementNode,
		Data: "span",
		Attr: []html.Attribute{{Key: "title", Val: `a"b&c`}},
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: `1 < 2 & "3"`})
	root.AppendChild(el)

	got := htmlscrub.RenderString(root)
	assert.Equal(t, `<span title="a&#34;b&amp;c">1 &lt; 2 &amp; &#34;3&#34;</span>`, got)
}

func TestRender_SkipsCommentsAndDoctype(t *testing.T) {
	root := htmlscrub.ParseFragment(`a<!-- hidden -->b`)
	assert.Equal(t, "ab", htmlscrub.RenderString(root))
}

func TestRender_RoundTripIdempotent(t *testing.T) {
	inputs := []string{
		`<p><b>unclosed`,
		`<p>1 &lt; 2</p>`,
		`<a href="https://x/?a=1&b=2">t</a>`,
		`text & <b title='"'>markup</b>`,
	}
	for _, in := range inputs {
		once := htmlscrub.RenderString(htmlscrub.ParseFragment(in))
		twice := htmlscrub.RenderString(htmlscrub.ParseFragment(once))
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestRender_WriterErrorPropagates(t *testing.T) {
	root := htmlscrub.ParseFragment(`<b>hello</b>`)
	wantErr := errors.New("sink full")
	err := htmlscrub.Render(failingWriter{err: wantErr}, root)
	require.ErrorIs(t, err, wantErr)
}

func TestRender_ToWriter(t *testing.T) {
	root := htmlscrub.ParseFragment(`<b>hello</b>`)
	var sb strings.Builder
	require.NoError(t, htmlscrub.Render(&sb, root))
	assert.Equal(t, `<b>hello</b>`, sb.String())
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
