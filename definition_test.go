package palabras_test

import (
	"testing"

	"github.com/fwojciec/palabras"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinitionItem(t *testing.T) {
	t.Parallel()

	t.Run("plain gloss has no labels", func(t *testing.T) {
		t.Parallel()

		def, ok := palabras.ParseDefinitionItem("a being, organism")

		require.True(t, ok)
		assert.Equal(t, palabras.Definition{Labels: []string{}, Gloss: "a being, organism"}, def)
	})

	t.Run("leading parenthetical holds the labels", func(t *testing.T) {
		t.Parallel()

		def, ok := palabras.ParseDefinitionItem("(transitive) to be")

		require.True(t, ok)
		assert.Equal(t, []string{"transitive"}, def.Labels)
		assert.Equal(t, "to be", def.Gloss)
	})

	t.Run("comma-separated and repeated parentheticals", func(t *testing.T) {
		t.Parallel()

		def, ok := palabras.ParseDefinitionItem("(reflexive, intransitive) (colloquial) to forget")

		require.True(t, ok)
		assert.Equal(t, []string{"reflexive", "intransitive", "colloquial"}, def.Labels)
		assert.Equal(t, "to forget", def.Gloss)
	})

	t.Run("later parentheticals stay in the gloss", func(t *testing.T) {
		t.Parallel()

		def, ok := palabras.ParseDefinitionItem("(copulative) to be (essentially or identified as)")

		require.True(t, ok)
		assert.Equal(t, "to be (essentially or identified as)", def.Gloss)
	})

	t.Run("whitespace is normalized", func(t *testing.T) {
		t.Parallel()

		def, ok := palabras.ParseDefinitionItem("  (Spain)  cool\n")

		require.True(t, ok)
		assert.Equal(t, []string{"Spain"}, def.Labels)
		assert.Equal(t, "cool", def.Gloss)
	})

	t.Run("labels without gloss are not a sense", func(t *testing.T) {
		t.Parallel()

		_, ok := palabras.ParseDefinitionItem("(obsolete)")

		assert.False(t, ok)
	})

	t.Run("empty item is not a sense", func(t *testing.T) {
		t.Parallel()

		_, ok := palabras.ParseDefinitionItem("   ")

		assert.False(t, ok)
	})
}

func TestParseDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("returns top-level items in order", func(t *testing.T) {
		t.Parallel()

		seg := segment(t, `<h3>Verb</h3><p><b>ser</b></p>
<ol>
<li>(transitive) to be<dl><dd><i>Soy estudiante.</i> I am a student.</dd></dl></li>
<li>to exist<ul><li>quotation</li></ul></li>
<li></li>
<li>(auxiliary) to be</li>
</ol>`)

		defs, err := palabras.ParseDefinitions(seg)

		require.NoError(t, err)
		assert.Equal(t, []palabras.Definition{
			{Labels: []string{"transitive"}, Gloss: "to be"},
			{Labels: []string{}, Gloss: "to exist"},
			{Labels: []string{"auxiliary"}, Gloss: "to be"},
		}, defs)
	})

	t.Run("uses only the first list", func(t *testing.T) {
		t.Parallel()

		seg := segment(t, `<h3>Noun</h3><p><b>ser</b></p><ol><li>a being</li></ol><ol><li>other</li></ol>`)

		defs, err := palabras.ParseDefinitions(seg)

		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, "a being", defs[0].Gloss)
	})

	t.Run("headings nested in an item stay out of the gloss", func(t *testing.T) {
		t.Parallel()

		seg := palabras.Segment{
			Heading: "Verb",
			Nodes:   parse(t, `<ol><li>to be<h4>Usage notes</h4></li></ol>`).Children(),
		}

		defs, err := palabras.ParseDefinitions(seg)

		require.NoError(t, err)
		assert.Equal(t, []palabras.Definition{{Labels: []string{}, Gloss: "to be"}}, defs)
	})

	t.Run("fails without a list", func(t *testing.T) {
		t.Parallel()

		seg := segment(t, `<h3>Noun</h3><p><b>ser</b></p>`)

		_, err := palabras.ParseDefinitions(seg)

		assert.Equal(t, palabras.EDEFINITION, palabras.ErrorCode(err))
	})

	t.Run("fails when no item has a gloss", func(t *testing.T) {
		t.Parallel()

		seg := segment(t, `<h3>Noun</h3><p><b>ser</b></p><ol><li>(obsolete)</li><li></li></ol>`)

		_, err := palabras.ParseDefinitions(seg)

		assert.Equal(t, palabras.EDEFINITION, palabras.ErrorCode(err))
	})
}
