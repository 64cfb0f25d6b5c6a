package rod

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/goquery"
	"github.com/go-rod/rod"
)

// Ensure PageLoader implements xwrap.PageLoader at compile time.
var _ xwrap.PageLoader = (*PageLoader)(nil)

// PageLoader renders pages in Chrome and extracts their features, adding
// computed style and geometry from the live page to each feature.
type PageLoader struct {
	fetcher *Fetcher
	logger  *slog.Logger
}

// NewPageLoader creates a PageLoader rendering pages with fetcher.
// If logger is nil, features whose style cannot be read are dropped silently.
func NewPageLoader(fetcher *Fetcher, logger *slog.Logger) *PageLoader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PageLoader{fetcher: fetcher, logger: logger}
}

// Load renders url and returns its HTML and features. The browser tab is
// released before Load returns.
func (l *PageLoader) Load(ctx context.Context, url string) (*xwrap.Page, error) {
	var page *xwrap.Page
	err := l.fetcher.withPage(ctx, url, func(p *rod.Page) error {
		html, err := p.HTML()
		if err != nil {
			return xwrap.Errorf(xwrap.EFETCH, "reading HTML of %s: %v", url, err)
		}

		features, err := goquery.ExtractFeatures(html)
		if err != nil {
			return err
		}

		if err := l.addVisuals(p, url, features); err != nil {
			return err
		}

		page = &xwrap.Page{URL: url, HTML: html, Features: features}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Close releases browser resources.
func (l *PageLoader) Close() error {
	return l.fetcher.Close()
}

// addVisuals reads the style of every feature in one round trip. Features
// that cannot be located or whose style cannot be parsed keep a nil Visual.
func (l *PageLoader) addVisuals(p *rod.Page, url string, features []*xwrap.Feature) error {
	if len(features) == 0 {
		return nil
	}

	paths := make([]string, len(features))
	for i, f := range features {
		paths[i] = f.Path
	}

	res, err := p.Eval(computedStyleScript, paths)
	if err != nil {
		return fmt.Errorf("reading computed styles of %s: %w", url, err)
	}

	var styles []computedStyle
	if err := json.Unmarshal([]byte(res.Value.Str()), &styles); err != nil {
		return fmt.Errorf("decoding computed styles of %s: %w", url, err)
	}
	if len(styles) != len(features) {
		return fmt.Errorf("computed styles of %s: got %d results for %d features", url, len(styles), len(features))
	}

	for i, style := range styles {
		if !style.Found {
			l.logger.Debug("leaf not found in rendered page", "url", url, "xpath", style.Path)
			continue
		}
		visual, err := style.visual()
		if err != nil {
			l.logger.Debug("unreadable leaf style", "url", url, "xpath", style.Path, "err", err)
			continue
		}
		features[i].Visual = visual
	}
	return nil
}
