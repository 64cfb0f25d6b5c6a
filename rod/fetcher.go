// Package rod renders pages in headless Chrome using go-rod. It provides a
// Fetcher for JavaScript-dependent pages and a PageLoader that augments
// features with computed style and on-screen geometry.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/xwrap"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation and rendering of a single page.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements xwrap.Fetcher at compile time.
var _ xwrap.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager  *BrowserManager
	timeout  time.Duration
	maxPages int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page timeout. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBrowserRecycling sets how many pages are rendered before the browser
// is restarted. Defaults to DefaultMaxPages.
func WithBrowserRecycling(maxPages int64) Option {
	return func(f *Fetcher) {
		f.maxPages = maxPages
	}
}

// NewFetcher launches a headless Chrome browser and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.maxPages))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var html string
	err := f.withPage(ctx, url, func(page *rod.Page) error {
		var err error
		html, err = page.HTML()
		return err
	})
	return html, err
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// withPage opens url in a fresh tab, waits for it to load and calls fn with
// the live page. The tab is closed when withPage returns, whether or not fn
// succeeds.
func (f *Fetcher) withPage(ctx context.Context, url string, fn func(page *rod.Page) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	browser, err := f.manager.Browser()
	if err != nil {
		return err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return xwrap.Errorf(xwrap.EFETCH, "opening tab for %s: %v", url, err)
	}
	defer f.manager.IncrementPageCount()
	defer page.Close()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(ctx)

	var resp proto.NetworkResponseReceived
	waitResponse := page.WaitEvent(&resp)

	if err := page.Navigate(url); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return xwrap.Errorf(xwrap.EFETCH, "navigating to %s: %v", url, err)
	}
	waitResponse()

	if resp.Response != nil && resp.Response.Status >= 400 {
		return &xwrap.FetchError{
			URL:        url,
			StatusCode: resp.Response.Status,
			Status:     resp.Response.StatusText,
		}
	}

	if err := page.WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return xwrap.Errorf(xwrap.EFETCH, "loading %s: %v", url, err)
	}

	return fn(page)
}
