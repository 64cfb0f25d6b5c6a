// Package http provides HTTP-based implementations of xwrap.Fetcher and
// xwrap.SitemapService for static sites that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/xwrap"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies requests made by the fetcher.
const DefaultUserAgent = "xwrap/1.0 (+https://github.com/fwojciec/xwrap)"

// Ensure Fetcher implements xwrap.Fetcher at compile time.
var _ xwrap.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Transport failures are returned as EFETCH errors; non-200 responses as
// *xwrap.FetchError carrying the status.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", xwrap.Errorf(xwrap.EINVALID, "invalid URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", xwrap.Errorf(xwrap.EFETCH, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &xwrap.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", xwrap.Errorf(xwrap.EFETCH, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
