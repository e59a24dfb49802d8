package mock

import "github.com/fwojciec/chatsnap"

var _ chatsnap.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of chatsnap.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]chatsnap.Turn, []chatsnap.Artifact, error)
}

func (e *Extractor) Extract(html string) ([]chatsnap.Turn, []chatsnap.Artifact, error) {
	return e.ExtractFn(html)
}

var _ chatsnap.Converter = (*Converter)(nil)

// Converter is a mock implementation of chatsnap.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
