package lookup

import (
	"context"

	"github.com/fwojciec/palabras"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of words looked up in parallel.
const DefaultConcurrency = 4

// Result is the outcome of one word of a batch.
type Result struct {
	Word   string
	Result *palabras.WordResult
	Err    error
}

// LookupAll looks up words with at most concurrency lookups in flight.
// Results are returned in the order of words. A failed word does not stop
// the others; its error is recorded in the Result.
func LookupAll(ctx context.Context, svc palabras.WordService, words []string, opts palabras.LookupOptions, concurrency int) []Result {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, word := range words {
		g.Go(func() error {
			result, err := svc.LookupWord(gctx, word, opts)
			results[i] = Result{Word: word, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
