package palabras

// Extractor turns page markup into a WordResult.
type Extractor interface {
	// Extract parses markup and returns the entries of the given language
	// section. Returns ENOTFOUND if the section is absent or holds no
	// usable part-of-speech block.
	Extract(markup string, language string) (*WordResult, error)
}

// SectionRenderer returns the raw markup of a single language section.
type SectionRenderer interface {
	// SectionHTML returns the HTML of the language section of a page.
	// Returns ENOTFOUND if the page has no such section.
	SectionHTML(markup string, language string) (string, error)
}
