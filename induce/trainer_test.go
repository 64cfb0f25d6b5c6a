package induce_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/goquery"
	"github.com/fwojciec/xwrap/htmlquery"
	"github.com/fwojciec/xwrap/induce"
	"github.com/fwojciec/xwrap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pages returns a loader serving fixed markup per URL.
func pages(t *testing.T, markup map[string]string) *mock.PageLoader {
	t.Helper()

	return &mock.PageLoader{
		LoadFn: func(_ context.Context, url string) (*xwrap.Page, error) {
			html, ok := markup[url]
			if !ok {
				return nil, &xwrap.FetchError{URL: url, StatusCode: 404, Status: "Not Found"}
			}
			features, err := goquery.ExtractFeatures(html)
			if err != nil {
				return nil, err
			}
			return &xwrap.Page{URL: url, HTML: html, Features: features}, nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestTrainer_Train(t *testing.T) {
	t.Parallel()

	t.Run("learns a mapping from example pages", func(t *testing.T) {
		t.Parallel()

		trainer := &induce.Trainer{
			Loader: pages(t, map[string]string{
				"https://example.com/a": `<html><body><div><span>Dune</span><p>Frank Herbert</p></div></body></html>`,
				"https://example.com/b": `<html><body><div><span>Emma</span><p>Jane Austen</p></div></body></html>`,
			}),
			Parser:      htmlquery.NewParser(),
			RetryDelays: []time.Duration{0},
		}

		result, err := trainer.Train(context.Background(), []*xwrap.Example{
			{URL: "https://example.com/a", Targets: map[string]string{"title": "Dune", "author": "Frank Herbert"}},
			{URL: "https://example.com/b", Targets: map[string]string{"title": "Emma", "author": "Jane Austen"}},
		})

		require.NoError(t, err)
		assert.Equal(t, xwrap.Mapping{
			"author": "/html/body/div/p//text()",
			"title":  "/html/body/div/span//text()",
		}, result.Mapping)
		require.Len(t, result.Selections, 2)
		assert.Equal(t, "author", result.Selections[0].Field)
		assert.Equal(t, "title", result.Selections[1].Field)
	})

	t.Run("rejects an empty example list", func(t *testing.T) {
		t.Parallel()

		trainer := &induce.Trainer{Loader: pages(t, nil), Parser: htmlquery.NewParser()}

		_, err := trainer.Train(context.Background(), nil)

		assert.Equal(t, xwrap.EINVALID, xwrap.ErrorCode(err))
	})

	t.Run("rejects an invalid example", func(t *testing.T) {
		t.Parallel()

		trainer := &induce.Trainer{Loader: pages(t, nil), Parser: htmlquery.NewParser()}

		_, err := trainer.Train(context.Background(), []*xwrap.Example{
			{URL: "", Targets: map[string]string{"title": "x"}},
		})

		assert.Equal(t, xwrap.EINVALID, xwrap.ErrorCode(err))
	})

	t.Run("aborts when a page cannot be loaded", func(t *testing.T) {
		t.Parallel()

		trainer := &induce.Trainer{
			Loader:      pages(t, map[string]string{"https://example.com/a": `<p>x</p>`}),
			Parser:      htmlquery.NewParser(),
			RetryDelays: []time.Duration{0},
		}

		_, err := trainer.Train(context.Background(), []*xwrap.Example{
			{URL: "https://example.com/a", Targets: map[string]string{"v": "x"}},
			{URL: "https://example.com/missing", Targets: map[string]string{"v": "x"}},
		})

		require.Error(t, err)
		assert.Equal(t, xwrap.EFETCH, xwrap.ErrorCode(err))
		assert.Contains(t, err.Error(), "https://example.com/missing")
	})
}

func TestTrainer_BuildDataset(t *testing.T) {
	t.Parallel()

	t.Run("keeps example order", func(t *testing.T) {
		t.Parallel()

		markup := map[string]string{}
		var examples []*xwrap.Example
		for _, u := range []string{"https://example.com/1", "https://example.com/2", "https://example.com/3", "https://example.com/4"} {
			markup[u] = `<html><body><p>` + u + `</p></body></html>`
			examples = append(examples, &xwrap.Example{URL: u, Targets: map[string]string{"url": u}})
		}
		trainer := &induce.Trainer{
			Loader:      pages(t, markup),
			Parser:      htmlquery.NewParser(),
			Concurrency: 2,
		}

		dataset, err := trainer.BuildDataset(context.Background(), examples)

		require.NoError(t, err)
		require.Len(t, dataset, len(examples))
		for i, ex := range examples {
			assert.Equal(t, ex.URL, dataset[i].URL)
			assert.Equal(t, ex.Targets, dataset[i].Targets)
			assert.Equal(t, markup[ex.URL], dataset[i].HTML)
			require.Len(t, dataset[i].Features, 1)
		}
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32
		loader := &mock.PageLoader{
			LoadFn: func(_ context.Context, url string) (*xwrap.Page, error) {
				if attempts.Add(1) == 1 {
					return nil, &xwrap.FetchError{URL: url, StatusCode: 503, Status: "Service Unavailable"}
				}
				return &xwrap.Page{URL: url, HTML: "<p>x</p>"}, nil
			},
		}
		trainer := &induce.Trainer{
			Loader:      loader,
			Parser:      htmlquery.NewParser(),
			RetryDelays: []time.Duration{0, 0},
		}

		dataset, err := trainer.BuildDataset(context.Background(), []*xwrap.Example{
			{URL: "https://example.com/a", Targets: map[string]string{"v": "x"}},
		})

		require.NoError(t, err)
		require.Len(t, dataset, 1)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("waits on the rate limiter per host", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var domains []string
		trainer := &induce.Trainer{
			Loader: pages(t, map[string]string{"https://example.com/a": `<p>x</p>`}),
			Parser: htmlquery.NewParser(),
			RateLimiter: &mock.DomainLimiter{
				WaitFn: func(_ context.Context, domain string) error {
					mu.Lock()
					defer mu.Unlock()
					domains = append(domains, domain)
					return nil
				},
			},
		}

		_, err := trainer.BuildDataset(context.Background(), []*xwrap.Example{
			{URL: "https://example.com/a", Targets: map[string]string{"v": "x"}},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com"}, domains)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		trainer := &induce.Trainer{
			Loader: &mock.PageLoader{
				LoadFn: func(ctx context.Context, _ string) (*xwrap.Page, error) {
					return nil, ctx.Err()
				},
			},
			Parser: htmlquery.NewParser(),
		}

		_, err := trainer.BuildDataset(ctx, []*xwrap.Example{
			{URL: "https://example.com/a", Targets: map[string]string{"v": "x"}},
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
