package palabras

import "context"

// Fetcher retrieves raw page markup for a headword.
type Fetcher interface {
	// Fetch returns the page markup for word. A positive revision selects
	// a specific page revision.
	// Returns ENOTFOUND if the dictionary has no page for the word,
	// ENETWORK or ETIMEOUT when the request fails.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, word string, revision int) (markup string, err error)
}
