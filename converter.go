package palabras

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as a language section,
	// into Markdown.
	Convert(html string) (string, error)
}
