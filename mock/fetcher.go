package mock

import (
	"context"

	"github.com/fwojciec/palabras"
)

var _ palabras.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of palabras.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, word string, revision int) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, word string, revision int) (string, error) {
	return f.FetchFn(ctx, word, revision)
}
