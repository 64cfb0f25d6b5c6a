// Package induce learns wrappers: it builds a training dataset from labeled
// example pages, generates candidate paths per field, scores them across
// the dataset and selects the best path for each field.
package induce

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/crawl"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of example pages loaded at once.
const DefaultConcurrency = 4

// Trainer learns a mapping from labeled example pages.
type Trainer struct {
	Loader      xwrap.PageLoader
	Parser      xwrap.Parser
	RateLimiter xwrap.DomainLimiter
	Logger      *slog.Logger
	Concurrency int
	RetryDelays []time.Duration
}

// Result is the outcome of training.
type Result struct {
	// Mapping holds the best path per field.
	Mapping xwrap.Mapping

	// Selections reports every candidate's score per field, in field order.
	Selections []xwrap.Selection

	// Missing lists fields for which no example page contained the
	// expected value. They are absent from Mapping.
	Missing []string
}

// Train loads every example page and learns the best path per field.
// A page that cannot be loaded aborts training.
func (t *Trainer) Train(ctx context.Context, examples []*xwrap.Example) (*Result, error) {
	dataset, err := t.BuildDataset(ctx, examples)
	if err != nil {
		return nil, err
	}
	return Learn(t.Parser, dataset, t.logger()), nil
}

// BuildDataset validates the examples and loads their pages. Entries are
// returned in example order.
func (t *Trainer) BuildDataset(ctx context.Context, examples []*xwrap.Example) ([]*xwrap.DatasetEntry, error) {
	if len(examples) == 0 {
		return nil, xwrap.Errorf(xwrap.EINVALID, "at least one training example required")
	}
	for _, ex := range examples {
		if err := ex.Validate(); err != nil {
			return nil, err
		}
	}

	logger := t.logger()
	logger.Info("building training dataset", "examples", len(examples))

	concurrency := t.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := t.RetryDelays
	if delays == nil {
		delays = crawl.DefaultRetryDelays()
	}
	retryLog := func(format string, args ...any) {
		logger.Info(fmt.Sprintf(format, args...))
	}

	dataset := make([]*xwrap.DatasetEntry, len(examples))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, ex := range examples {
		g.Go(func() error {
			if err := crawl.WaitForURL(gctx, t.RateLimiter, ex.URL); err != nil {
				return err
			}
			page, err := crawl.WithRetry(gctx, ex.URL, t.Loader.Load, retryLog, delays)
			if err != nil {
				return fmt.Errorf("loading %s: %w", ex.URL, err)
			}
			dataset[i] = &xwrap.DatasetEntry{
				URL:      ex.URL,
				Targets:  ex.Targets,
				Features: page.Features,
				HTML:     page.HTML,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dataset, nil
}

// Learn runs candidate generation, scoring and selection on a loaded dataset.
func Learn(parser xwrap.Parser, dataset []*xwrap.DatasetEntry, logger *slog.Logger) *Result {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fields := xwrap.Fields(dataset)
	candidates, _ := GenerateCandidates(dataset, fields)

	logger.Info("scoring candidates", "fields", len(fields))
	scorer := NewScorer(parser, dataset, logger)
	mapping, selections, missing := Select(scorer, candidates, fields, logger)

	return &Result{
		Mapping:    mapping,
		Selections: selections,
		Missing:    missing,
	}
}

func (t *Trainer) logger() *slog.Logger {
	if t.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return t.Logger
}
