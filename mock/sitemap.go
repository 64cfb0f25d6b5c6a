package mock

import (
	"context"

	"github.com/fwojciec/xwrap"
)

var _ xwrap.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of xwrap.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *xwrap.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *xwrap.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
