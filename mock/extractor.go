package mock

import "github.com/fwojciec/palabras"

var _ palabras.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of palabras.Extractor.
type Extractor struct {
	ExtractFn func(markup, language string) (*palabras.WordResult, error)
}

func (e *Extractor) Extract(markup, language string) (*palabras.WordResult, error) {
	return e.ExtractFn(markup, language)
}

var _ palabras.SectionRenderer = (*SectionRenderer)(nil)

// SectionRenderer is a mock implementation of palabras.SectionRenderer.
type SectionRenderer struct {
	SectionHTMLFn func(markup, language string) (string, error)
}

func (r *SectionRenderer) SectionHTML(markup, language string) (string, error) {
	return r.SectionHTMLFn(markup, language)
}
