// Package rod implements the Renderer capability using Chrome browser
// automation via go-rod.
package rod

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/chatsnap"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultNavigationTimeout bounds navigation and load waiting. It never
// applies to the operator confirmation gate, which is unbounded.
const DefaultNavigationTimeout = 60 * time.Second

// settleDelay gives lazy-loaded content time to appear after scrolling
// to the bottom of the page.
const settleDelay = 2 * time.Second

// A4 paper size in inches for PDF rendering.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// Ensure Renderer implements chatsnap.Renderer at compile time.
var _ chatsnap.Renderer = (*Renderer)(nil)

// Renderer drives share pages through a Chrome browser.
type Renderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	headless bool
	timeout  time.Duration
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeadless controls whether the browser runs without a window.
// Defaults to false: the operator usually needs the window to solve a
// verification challenge before extraction can proceed.
func WithHeadless(headless bool) Option {
	return func(r *Renderer) {
		r.headless = headless
	}
}

// WithNavigationTimeout sets the per-navigation timeout.
func WithNavigationTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewRenderer launches a Chrome browser (rod's launcher finds or
// downloads one). Close must be called when the Renderer is no longer
// needed.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{timeout: DefaultNavigationTimeout}
	for _, opt := range opts {
		opt(r)
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(r.headless)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	r.browser = browser
	r.launcher = l
	return r, nil
}

// Render navigates to the URL, waits for load, scrolls to the bottom to
// trigger lazy content, and returns a handle to the rendered page.
func (r *Renderer) Render(ctx context.Context, url string) (chatsnap.DOM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}

	navCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p := page.Context(navCtx)
	if err := p.Navigate(url); err != nil {
		_ = page.Close()
		return nil, err
	}
	if err := p.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, err
	}

	// Trigger lazy-loaded content. A scroll failure is tolerated; the
	// page is still usable for extraction.
	if _, err := p.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err == nil {
		select {
		case <-time.After(settleDelay):
		case <-ctx.Done():
			_ = page.Close()
			return nil, ctx.Err()
		}
	}

	return &Page{page: page}, nil
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// Ensure Page implements chatsnap.DOM at compile time.
var _ chatsnap.DOM = (*Page)(nil)

// Page is a handle to a rendered share page.
type Page struct {
	page *rod.Page
}

// HTML returns the rendered page HTML.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

// PDF renders the page to A4 PDF bytes with backgrounds printed.
func (p *Page) PDF(ctx context.Context) ([]byte, error) {
	width := a4WidthInches
	height := a4HeightInches

	reader, err := p.page.Context(ctx).PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &width,
		PaperHeight:     &height,
	})
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

// Close releases the page.
func (p *Page) Close() error {
	return p.page.Close()
}
