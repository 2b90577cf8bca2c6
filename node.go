package palabras

// Node is a minimal view of one node of a parsed page.
// The entry extractor is written against this interface only, so it does
// not depend on a particular markup parser.
type Node interface {
	// Tag returns the lower-case element name, or "" for text and other
	// non-element nodes.
	Tag() string

	// HeadingLevel returns 1-6 for heading nodes and 0 otherwise.
	HeadingLevel() int

	// HeadingText returns the title of a heading node without any
	// decorations such as edit links. Empty for non-heading nodes.
	HeadingText() string

	// Children returns the direct children in document order.
	Children() []Node

	// Text returns the concatenated text content of the node.
	Text() string
}
