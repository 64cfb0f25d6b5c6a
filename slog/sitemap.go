package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/xwrap"
)

// Ensure LoggingSitemapService implements xwrap.SitemapService.
var _ xwrap.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   xwrap.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next xwrap.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the number of URLs
// found together with the filter in effect.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *xwrap.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		var include, exclude int
		if filter != nil {
			include, exclude = len(filter.Include), len(filter.Exclude)
		}
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"include", include,
			"exclude", exclude,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
