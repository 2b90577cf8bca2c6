// Package lookup resolves words by fetching their Wiktionary page and
// extracting the entries of one language section.
package lookup

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/palabras"
)

// Ensure Service implements palabras.WordService at compile time.
var _ palabras.WordService = (*Service)(nil)

// Service combines a Fetcher and an Extractor into a palabras.WordService.
type Service struct {
	Fetcher   palabras.Fetcher
	Extractor palabras.Extractor

	// Renderer and Converter are only needed by LookupSection.
	Renderer  palabras.SectionRenderer
	Converter palabras.Converter

	// Language is the section to extract. Defaults to palabras.DefaultLanguage.
	Language string

	// RetryDelays are the waits between fetch attempts.
	// Nil uses DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Logf, if set, reports retry attempts.
	Logf LogFunc
}

// NewService returns a Service with default language and retry delays.
func NewService(fetcher palabras.Fetcher, extractor palabras.Extractor) *Service {
	return &Service{
		Fetcher:   fetcher,
		Extractor: extractor,
		Language:  palabras.DefaultLanguage,
	}
}

// LookupWord fetches the page for word and extracts its entries.
// The Word of the result is the word as queried.
func (s *Service) LookupWord(ctx context.Context, word string, opts palabras.LookupOptions) (*palabras.WordResult, error) {
	markup, err := s.fetch(ctx, word, opts)
	if err != nil {
		return nil, err
	}

	result, err := s.Extractor.Extract(markup, s.language())
	if err != nil {
		return nil, err
	}
	result.Word = strings.TrimSpace(word)
	return result, nil
}

// LookupSection fetches the page for word and returns its language section
// converted to Markdown.
func (s *Service) LookupSection(ctx context.Context, word string, opts palabras.LookupOptions) (string, error) {
	if s.Renderer == nil || s.Converter == nil {
		return "", palabras.Errorf(palabras.EINTERNAL, "section rendering not configured")
	}

	markup, err := s.fetch(ctx, word, opts)
	if err != nil {
		return "", err
	}

	html, err := s.Renderer.SectionHTML(markup, s.language())
	if err != nil {
		return "", err
	}
	return s.Converter.Convert(html)
}

func (s *Service) fetch(ctx context.Context, word string, opts palabras.LookupOptions) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", palabras.Errorf(palabras.EINVALID, "word required")
	}
	if opts.Revision < 0 {
		return "", palabras.Errorf(palabras.EINVALID, "invalid revision %d", opts.Revision)
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, strings.TrimSpace(word), opts.Revision, s.Fetcher.Fetch, s.Logf, delays)
}

func (s *Service) language() string {
	if s.Language == "" {
		return palabras.DefaultLanguage
	}
	return s.Language
}
