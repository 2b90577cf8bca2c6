package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/palabras"
	"github.com/fwojciec/palabras/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a part-of-speech block", func(t *testing.T) {
		t.Parallel()

		html := `<div class="mw-heading mw-heading3"><h3>Noun</h3></div>
<p><strong class="Latn headword" lang="es">ser</strong> m (<i>plural</i> <b>seres</b>)</p>
<ol><li>a being, organism</li><li>nature, essence</li></ol>`

		conv := htmltomarkdown.NewConverter("")
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "### Noun")
		assert.Contains(t, md, "**ser**")
		assert.Contains(t, md, "**seres**")
		assert.Contains(t, md, "1. a being, organism")
		assert.Contains(t, md, "2. nature, essence")
	})

	t.Run("resolves relative links against Wiktionary", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="/wiki/soy#Spanish">soy</a>.</p>`

		conv := htmltomarkdown.NewConverter("")
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[soy](https://en.wiktionary.org/wiki/soy#Spanish)")
	})

	t.Run("resolves links against a custom domain", func(t *testing.T) {
		t.Parallel()

		html := `<p><a href="/wiki/ser">ser</a></p>`

		conv := htmltomarkdown.NewConverter("https://es.wiktionary.org")
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "(https://es.wiktionary.org/wiki/ser)")
	})

	t.Run("converts conjugation tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>person</th><th>present</th></tr></thead>
<tbody><tr><td>yo</td><td>soy</td></tr><tr><td>tú</td><td>eres</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter("")
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "soy")
		assert.Contains(t, md, "eres")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts nested usage examples", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li>to forget<ul><li><i>Me olvidé.</i></li></ul></li></ol>`

		conv := htmltomarkdown.NewConverter("")
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "1. to forget")
		assert.Contains(t, md, "*Me olvidé.*")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter("")
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, palabras.EINVALID, palabras.ErrorCode(err))
	})
}
