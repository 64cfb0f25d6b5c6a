package goquery

import (
	"context"

	"github.com/fwojciec/xwrap"
)

// Ensure PageLoader implements xwrap.PageLoader at compile time.
var _ xwrap.PageLoader = (*PageLoader)(nil)

// PageLoader loads pages through a Fetcher and extracts their features
// without rendering them. Features carry no visual attributes.
type PageLoader struct {
	fetcher xwrap.Fetcher
}

// NewPageLoader creates a PageLoader that fetches pages with fetcher.
func NewPageLoader(fetcher xwrap.Fetcher) *PageLoader {
	return &PageLoader{fetcher: fetcher}
}

// Load fetches url and extracts the features of its content leaves.
func (l *PageLoader) Load(ctx context.Context, url string) (*xwrap.Page, error) {
	html, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	features, err := ExtractFeatures(html)
	if err != nil {
		return nil, err
	}

	return &xwrap.Page{
		URL:      url,
		HTML:     html,
		Features: features,
	}, nil
}

// Close closes the underlying fetcher.
func (l *PageLoader) Close() error {
	return l.fetcher.Close()
}
