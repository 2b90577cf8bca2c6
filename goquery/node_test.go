package goquery_test

import (
	"testing"

	"github.com/fwojciec/palabras"
	"github.com/fwojciec/palabras/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("uses the parser output container as root", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2>Outside</h2>
<div class="mw-parser-output"><h2>Inside</h2></div>
</body></html>`

		root, err := goquery.Parse(html)

		require.NoError(t, err)
		assert.Equal(t, "div", root.Tag())
		assert.Equal(t, "Inside", root.Text())
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`<p>hola</p>`)

		require.NoError(t, err)
		assert.Equal(t, "body", root.Tag())
		assert.Equal(t, "hola", root.Text())
	})
}

func TestNode_HeadingLevel(t *testing.T) {
	t.Parallel()

	t.Run("reports level of plain heading elements", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`<h2>Spanish</h2><h4>Noun</h4><p>text</p>`)
		require.NoError(t, err)

		children := elements(root)
		require.Len(t, children, 3)
		assert.Equal(t, 2, children[0].HeadingLevel())
		assert.Equal(t, 4, children[1].HeadingLevel())
		assert.Equal(t, 0, children[2].HeadingLevel())
	})

	t.Run("reports level of mw-heading wrappers", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`<div class="mw-heading mw-heading3"><h3 id="Verb">Verb</h3><span class="mw-editsection">[edit]</span></div>`)
		require.NoError(t, err)

		children := elements(root)
		require.Len(t, children, 1)
		assert.Equal(t, 3, children[0].HeadingLevel())
		assert.Equal(t, "Verb", children[0].HeadingText())
	})

	t.Run("ignores divs that are not heading wrappers", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`<div class="NavFrame"><h3>Inner</h3></div>`)
		require.NoError(t, err)

		children := elements(root)
		require.Len(t, children, 1)
		assert.Equal(t, 0, children[0].HeadingLevel())
		assert.Empty(t, children[0].HeadingText())
	})

	t.Run("text nodes are not headings", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`plain text`)
		require.NoError(t, err)

		children := root.Children()
		require.Len(t, children, 1)
		assert.Empty(t, children[0].Tag())
		assert.Equal(t, 0, children[0].HeadingLevel())
		assert.Equal(t, "plain text", children[0].Text())
	})
}

func TestNode_HeadingText(t *testing.T) {
	t.Parallel()

	t.Run("reads legacy mw-headline spans", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`<h2><span class="mw-headline" id="Spanish">Spanish</span><span class="mw-editsection"><span class="mw-editsection-bracket">[</span><a href="#">edit</a><span class="mw-editsection-bracket">]</span></span></h2>`)
		require.NoError(t, err)

		children := elements(root)
		require.Len(t, children, 1)
		assert.Equal(t, "Spanish", children[0].HeadingText())
	})

	t.Run("strips edit links from headings without headline span", func(t *testing.T) {
		t.Parallel()

		root, err := goquery.Parse(`<h3>Noun <span class="mw-editsection">[edit]</span></h3>`)
		require.NoError(t, err)

		children := elements(root)
		require.Len(t, children, 1)
		assert.Equal(t, "Noun", children[0].HeadingText())
		assert.Contains(t, children[0].Text(), "[edit]", "the page itself must not be modified")
	})
}

func TestNode_Children(t *testing.T) {
	t.Parallel()

	root, err := goquery.Parse(`<li>to <a href="/wiki/be">be</a><dl><dd>example</dd></dl></li>`)
	require.NoError(t, err)

	items := elements(root)
	require.Len(t, items, 1)

	children := items[0].Children()
	require.Len(t, children, 3)
	assert.Empty(t, children[0].Tag())
	assert.Equal(t, "to ", children[0].Text())
	assert.Equal(t, "a", children[1].Tag())
	assert.Equal(t, "dl", children[2].Tag())
}

func TestNode_HTML(t *testing.T) {
	t.Parallel()

	root, err := goquery.Parse(`<p><b>ser</b></p>`)
	require.NoError(t, err)

	children := elements(root)
	require.Len(t, children, 1)

	html, err := children[0].(*goquery.Node).HTML()
	require.NoError(t, err)
	assert.Equal(t, "<p><b>ser</b></p>", html)
}

func TestNode_HTML_StripsEditLinks(t *testing.T) {
	t.Parallel()

	root, err := goquery.Parse(`<div class="mw-heading mw-heading3"><h3>Verb</h3><span class="mw-editsection">[<a href="/w/index.php?action=edit">edit</a>]</span></div>`)
	require.NoError(t, err)

	children := elements(root)
	require.Len(t, children, 1)

	html, err := children[0].(*goquery.Node).HTML()
	require.NoError(t, err)
	assert.Equal(t, `<div class="mw-heading mw-heading3"><h3>Verb</h3></div>`, html)
	assert.Contains(t, children[0].Text(), "edit")
}

// elements returns the element children of n.
func elements(n palabras.Node) []palabras.Node {
	var out []palabras.Node
	for _, c := range n.Children() {
		if c.Tag() != "" {
			out = append(out, c)
		}
	}
	return out
}
