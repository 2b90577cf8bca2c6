package mock

import "github.com/fwojciec/palabras"

var _ palabras.Converter = (*Converter)(nil)

// Converter is a mock implementation of palabras.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
