// Package htmltomarkdown renders Wiktionary section HTML as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/palabras"
)

// DefaultDomain is used to resolve relative links such as "/wiki/soy".
const DefaultDomain = "https://en.wiktionary.org"

// Ensure Converter implements palabras.Converter at compile time.
var _ palabras.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert section HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// NewConverter creates a new Converter that resolves links against domain.
// An empty domain uses DefaultDomain.
func NewConverter(domain string) *Converter {
	if domain == "" {
		domain = DefaultDomain
	}
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv, domain: domain}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", palabras.Errorf(palabras.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html, converter.WithDomain(c.domain))
	if err != nil {
		return "", palabras.Errorf(palabras.EINTERNAL, "convert section: %v", err)
	}

	return strings.TrimSpace(result), nil
}
