package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/xwrap"
)

// Ensure LoggingPageLoader implements xwrap.PageLoader.
var _ xwrap.PageLoader = (*LoggingPageLoader)(nil)

// LoggingPageLoader wraps a PageLoader with logging.
type LoggingPageLoader struct {
	next   xwrap.PageLoader
	logger *slog.Logger
}

// NewLoggingPageLoader creates a new LoggingPageLoader.
func NewLoggingPageLoader(next xwrap.PageLoader, logger *slog.Logger) *LoggingPageLoader {
	return &LoggingPageLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the page size and the
// number of features found.
func (l *LoggingPageLoader) Load(ctx context.Context, url string) (page *xwrap.Page, err error) {
	defer func(begin time.Time) {
		var bytes, features int
		if page != nil {
			bytes = len(page.HTML)
			features = len(page.Features)
		}
		l.logger.Info("page load",
			"url", url,
			"bytes", bytes,
			"features", features,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}

// Close delegates to the wrapped loader.
func (l *LoggingPageLoader) Close() error {
	return l.next.Close()
}
