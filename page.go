package xwrap

import "context"

// Page is a loaded page together with the features of its content leaves.
type Page struct {
	URL      string
	HTML     string
	Features []*Feature
}

// PageLoader fetches a page and extracts its features.
// Implementations hide whether the page is fetched statically or rendered
// in a browser; both produce the same path semantics.
type PageLoader interface {
	Load(ctx context.Context, url string) (*Page, error)

	// Close releases resources held by the loader.
	Close() error
}
