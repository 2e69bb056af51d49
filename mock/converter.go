package mock

import "github.com/fwojciec/pagemd"

var _ pagemd.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagemd.Converter.
type Converter struct {
	ConvertFn func(rawHTML, pageURL string, opts pagemd.Options) (string, error)
}

func (c *Converter) Convert(rawHTML, pageURL string, opts pagemd.Options) (string, error) {
	return c.ConvertFn(rawHTML, pageURL, opts)
}
