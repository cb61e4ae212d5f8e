package mock

import "github.com/fwojciec/tabdoc"

var _ tabdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of tabdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
