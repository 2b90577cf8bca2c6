package mock

import (
	"context"

	"github.com/fwojciec/palabras"
)

var _ palabras.WordService = (*WordService)(nil)

// WordService is a mock implementation of palabras.WordService.
type WordService struct {
	LookupWordFn func(ctx context.Context, word string, opts palabras.LookupOptions) (*palabras.WordResult, error)
}

func (s *WordService) LookupWord(ctx context.Context, word string, opts palabras.LookupOptions) (*palabras.WordResult, error) {
	return s.LookupWordFn(ctx, word, opts)
}
