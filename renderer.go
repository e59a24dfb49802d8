package chatsnap

import "context"

// DOM is a handle to a rendered share page. It exposes the page for
// read-only queries and must be closed to release browser resources.
type DOM interface {
	// HTML returns the rendered page HTML after scripts have run.
	HTML(ctx context.Context) (string, error)

	// PDF renders the page to PDF bytes.
	PDF(ctx context.Context) ([]byte, error)

	// Close releases the page.
	Close() error
}

// Renderer drives a browser to render share pages.
// Implementations use browser automation to handle JavaScript-rendered
// content.
type Renderer interface {
	// Render navigates to the URL, waits for the page to load and for
	// lazy content to settle, and returns a handle to the rendered DOM.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, url string) (DOM, error)

	// Close releases browser resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

// Confirmer blocks until the operator confirms the page is ready for
// extraction, e.g. after manually solving a verification challenge.
// The wait is deliberately unbounded; cancellation comes only from the
// context.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) error
}
