package goquery

import (
	"strings"

	"github.com/fwojciec/palabras"
)

// Ensure Extractor implements palabras.Extractor at compile time.
var _ palabras.Extractor = (*Extractor)(nil)

// Extractor parses Wiktionary HTML and extracts dictionary entries.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses markup and returns the entries of the language section.
// Returns ENOTFOUND if the page has no usable entry in that language.
func (e *Extractor) Extract(markup string, language string) (*palabras.WordResult, error) {
	root, err := Parse(markup)
	if err != nil {
		return nil, palabras.Errorf(palabras.ENOTFOUND, "No %s entry found from Wiktionary page", language)
	}
	return palabras.Extract(root, language)
}

// SectionHTML returns the HTML of the language section, without its
// heading and edit links. Returns ENOTFOUND if the section does not exist.
func (e *Extractor) SectionHTML(markup string, language string) (string, error) {
	root, err := Parse(markup)
	if err != nil {
		return "", palabras.Errorf(palabras.EINVALID, "failed to parse HTML: %v", err)
	}

	section, err := palabras.LocateSection(root, language)
	if err != nil {
		return "", palabras.Errorf(palabras.ENOTFOUND, "No %s entry found from Wiktionary page", language)
	}

	var b strings.Builder
	for _, n := range section.Nodes {
		node, ok := n.(*Node)
		if !ok {
			continue
		}
		s, err := node.HTML()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
