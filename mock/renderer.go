package mock

import (
	"context"

	"github.com/fwojciec/chatsnap"
)

var _ chatsnap.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of chatsnap.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (chatsnap.DOM, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (chatsnap.DOM, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

var _ chatsnap.DOM = (*DOM)(nil)

// DOM is a mock implementation of chatsnap.DOM.
type DOM struct {
	HTMLFn  func(ctx context.Context) (string, error)
	PDFFn   func(ctx context.Context) ([]byte, error)
	CloseFn func() error
}

func (d *DOM) HTML(ctx context.Context) (string, error) {
	return d.HTMLFn(ctx)
}

func (d *DOM) PDF(ctx context.Context) ([]byte, error) {
	return d.PDFFn(ctx)
}

func (d *DOM) Close() error {
	return d.CloseFn()
}

var _ chatsnap.Confirmer = (*Confirmer)(nil)

// Confirmer is a mock implementation of chatsnap.Confirmer.
type Confirmer struct {
	ConfirmFn func(ctx context.Context, prompt string) error
}

func (c *Confirmer) Confirm(ctx context.Context, prompt string) error {
	return c.ConfirmFn(ctx, prompt)
}
