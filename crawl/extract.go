package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/xwrap"
)

// Extractor applies a mapping to live pages.
type Extractor struct {
	Fetcher     xwrap.Fetcher
	Parser      xwrap.Parser
	RateLimiter xwrap.DomainLimiter
	RetryDelays []time.Duration
}

// Extract fetches url and returns the value of every mapped field.
func (e *Extractor) Extract(ctx context.Context, url string, mapping xwrap.Mapping) (map[string]string, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}
	if err := WaitForURL(ctx, e.RateLimiter, url); err != nil {
		return nil, err
	}

	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := WithRetry(ctx, url, e.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, err
	}

	return ApplyHTML(e.Parser, html, mapping)
}

// ApplyHTML parses html and applies mapping to it.
func ApplyHTML(parser xwrap.Parser, html string, mapping xwrap.Mapping) (map[string]string, error) {
	doc, err := parser.Parse(html)
	if err != nil {
		return nil, err
	}
	return mapping.Apply(doc)
}
