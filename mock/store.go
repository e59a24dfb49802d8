package mock

import (
	"context"

	"github.com/fwojciec/chatsnap"
)

var _ chatsnap.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of chatsnap.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, ex *chatsnap.Extraction) error
	WriteHTMLFn       func(ctx context.Context, html string) error
	RemoveHTMLFn      func() error
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, ex *chatsnap.Extraction) error {
	return w.WriteExtractionFn(ctx, ex)
}

func (w *ExtractionWriter) WriteHTML(ctx context.Context, html string) error {
	return w.WriteHTMLFn(ctx, html)
}

func (w *ExtractionWriter) RemoveHTML() error {
	return w.RemoveHTMLFn()
}

var _ chatsnap.Consolidator = (*Consolidator)(nil)

// Consolidator is a mock implementation of chatsnap.Consolidator.
type Consolidator struct {
	ConsolidateFn func(ctx context.Context, outputPath string, opts chatsnap.ConsolidateOptions) (*chatsnap.ConsolidateStats, error)
}

func (c *Consolidator) Consolidate(ctx context.Context, outputPath string, opts chatsnap.ConsolidateOptions) (*chatsnap.ConsolidateStats, error) {
	return c.ConsolidateFn(ctx, outputPath, opts)
}
