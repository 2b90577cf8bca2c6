package palabras

import "context"

// LookupOptions configures a single lookup.
type LookupOptions struct {
	// Revision pins the page revision; zero means the latest.
	Revision int
}

// WordService resolves words to their dictionary entries.
type WordService interface {
	// LookupWord fetches and extracts the entry for word.
	// Returns ENOTFOUND if there is no page or no entry in the language.
	LookupWord(ctx context.Context, word string, opts LookupOptions) (*WordResult, error)
}
