// Package crawl applies learned wrappers to live sites. It coordinates
// sitemap discovery, polite fetching, field extraction, and storage of the
// extracted records.
package crawl

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/bloom"
	"golang.org/x/sync/errgroup"
)

// Deduplication filter sizing.
const (
	expectedURLs      = 10000
	falsePositiveRate = 0.001
)

// DefaultCrawlConcurrency is the number of pages fetched at once.
const DefaultCrawlConcurrency = 10

// Crawler applies a wrapper to every page of a site listed in its sitemap.
type Crawler struct {
	Sitemaps    xwrap.SitemapService
	Fetcher     xwrap.Fetcher
	Parser      xwrap.Parser
	Records     xwrap.RecordService
	RateLimiter xwrap.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration

	// MaxPages caps the number of pages crawled. Zero means no limit.
	MaxPages int

	// ReplaceRecords clears the wrapper's stored records after the pages
	// were fetched and before the new records are saved. A crawl that
	// returns an error leaves stored records untouched.
	ReplaceRecords bool
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved      int
	Failed     int
	Duplicates int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	position int
	url      string
	fields   map[string]string
	hash     string
	err      error
}

// CrawlWrapper discovers the pages under sourceURL, applies the wrapper's
// mapping to each and saves one record per page. Pages that fail are
// counted and reported through progress; they do not stop the crawl.
// Records are saved in sitemap order.
func (c *Crawler) CrawlWrapper(ctx context.Context, wrapper *xwrap.Wrapper, sourceURL string, filter *xwrap.URLFilter, progress ProgressFunc) (*Result, error) {
	if err := wrapper.Mapping.Validate(); err != nil {
		return nil, err
	}

	discovered, err := c.Sitemaps.DiscoverURLs(ctx, sourceURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	urls, duplicates := c.dedupe(discovered)
	if len(urls) == 0 {
		if err := c.replaceRecords(ctx, wrapper.ID); err != nil {
			return nil, err
		}
		return &Result{Duplicates: duplicates}, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultCrawlConcurrency
	}

	resultCh := make(chan crawlResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- c.processURL(gctx, i, u, wrapper.Mapping)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]crawlResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			if result.err != nil {
				failedCount++
			}
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
		}
		if result.err != nil {
			failedCount++
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.replaceRecords(ctx, wrapper.ID); err != nil {
		return nil, err
	}

	var savedCount int
	for _, result := range results {
		if result.err != nil {
			continue
		}

		record := &xwrap.Record{
			WrapperID:   wrapper.ID,
			SourceURL:   result.url,
			Fields:      result.fields,
			ContentHash: result.hash,
			Position:    result.position,
		}
		if err := c.Records.CreateRecord(ctx, record); err != nil {
			failedCount++
			continue
		}
		savedCount++
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:      savedCount,
		Failed:     failedCount,
		Duplicates: duplicates,
	}, nil
}

// replaceRecords deletes the wrapper's stored records when ReplaceRecords
// is set.
func (c *Crawler) replaceRecords(ctx context.Context, wrapperID string) error {
	if !c.ReplaceRecords {
		return nil
	}
	if err := c.Records.DeleteRecordsByWrapper(ctx, wrapperID); err != nil {
		return fmt.Errorf("clearing previous records: %w", err)
	}
	return nil
}

// dedupe drops repeated URLs, keeping first occurrences in order, and
// applies MaxPages.
func (c *Crawler) dedupe(urls []string) ([]string, int) {
	seen := bloom.NewURLSet(max(uint(len(urls)), expectedURLs), falsePositiveRate)

	var unique []string
	var duplicates int
	for _, u := range urls {
		if !seen.Visit(u) {
			duplicates++
			continue
		}
		if c.MaxPages > 0 && len(unique) >= c.MaxPages {
			break
		}
		unique = append(unique, u)
	}
	return unique, duplicates
}

// processURL fetches a single page and applies the mapping to it.
func (c *Crawler) processURL(ctx context.Context, position int, url string, mapping xwrap.Mapping) crawlResult {
	result := crawlResult{
		position: position,
		url:      url,
	}

	if err := WaitForURL(ctx, c.RateLimiter, url); err != nil {
		result.err = err
		return result
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := WithRetry(ctx, url, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	fields, err := ApplyHTML(c.Parser, html, mapping)
	if err != nil {
		result.err = err
		return result
	}

	result.fields = fields
	result.hash = HashFields(fields)
	return result
}
