package xwrap

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML of the page at url.
	// Non-success responses are reported as *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
