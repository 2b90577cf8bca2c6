package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/palabras"
	"github.com/fwojciec/palabras/mock"
	palabrasslog "github.com/fwojciec/palabras/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs block counts and skipped segments", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(markup, language string) (*palabras.WordResult, error) {
				return &palabras.WordResult{
					Word:   "ser",
					Blocks: []palabras.Block{{Heading: "Noun"}},
					Skipped: []palabras.SkippedSegment{{
						Heading: "Verb",
						Err:     palabras.Errorf(palabras.EHEADWORD, "no headword line under Verb heading"),
					}},
				}, nil
			},
		}

		extractor := palabrasslog.NewLoggingExtractor(inner, logger)
		result, err := extractor.Extract("<html></html>", "Spanish")

		require.NoError(t, err)
		assert.Len(t, result.Blocks, 1)
		output := buf.String()
		assert.Contains(t, output, "level=WARN msg=\"segment skipped\"")
		assert.Contains(t, output, "heading=Verb")
		assert.Contains(t, output, "reason=\"no headword line under Verb heading\"")
		assert.Contains(t, output, "msg=extract language=Spanish blocks=1 skipped=1")
	})

	t.Run("logs not found", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(markup, language string) (*palabras.WordResult, error) {
				return nil, palabras.Errorf(palabras.ENOTFOUND, "No Spanish entry found from Wiktionary page")
			},
		}

		extractor := palabrasslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>", "Spanish")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "blocks=0")
		assert.Contains(t, output, "code=not_found")
	})
}
