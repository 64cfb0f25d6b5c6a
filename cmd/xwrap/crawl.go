package main

import (
	"fmt"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/crawl"
)

// Run executes the crawl command. Records from a previous crawl with the
// same wrapper are replaced once the new crawl succeeds.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	filter, err := xwrap.NewURLFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return err
	}

	wrapper, err := findWrapper(deps, c.Name)
	if err != nil {
		return err
	}

	if c.Concurrency > 0 {
		deps.Crawler.Concurrency = c.Concurrency
	}
	deps.Crawler.ReplaceRecords = true

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", crawl.TruncateURL(event.URL, 80), errorText(event.Error))
		}
	}

	result, err := deps.Crawler.CrawlWrapper(deps.Ctx, wrapper, c.URL, filter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d records (%d failed, %d duplicate URLs)\n",
		result.Saved, result.Failed, result.Duplicates)
	return nil
}
