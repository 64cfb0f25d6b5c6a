package crawl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/crawl"
	"github.com/fwojciec/xwrap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ xwrap.DomainLimiter = (*crawl.DomainLimiter)(nil)

// timedWait returns how long a Wait on domain blocked.
func timedWait(t *testing.T, limiter *crawl.DomainLimiter, domain string) time.Duration {
	t.Helper()
	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background(), domain))
	return time.Since(start)
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("spaces requests to one host", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)

		assert.Less(t, timedWait(t, limiter, "books.example"), 50*time.Millisecond)
		assert.GreaterOrEqual(t, timedWait(t, limiter, "books.example"), 80*time.Millisecond)
	})

	t.Run("hosts do not share a budget", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)
		timedWait(t, limiter, "books.example")

		assert.Less(t, timedWait(t, limiter, "films.example"), 50*time.Millisecond)
	})

	t.Run("gives up when the context ends", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		timedWait(t, limiter, "books.example")

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "books.example"))
	})

	t.Run("is safe for concurrent callers", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(200)
		hosts := []string{"a.example", "b.example", "a.example", "c.example", "b.example", "a.example"}

		var wg sync.WaitGroup
		errs := make([]error, len(hosts))
		for i, host := range hosts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = limiter.Wait(context.Background(), host)
			}()
		}
		wg.Wait()

		for _, err := range errs {
			assert.NoError(t, err)
		}
	})
}

func TestWaitForURL(t *testing.T) {
	t.Parallel()

	t.Run("waits on the URL's host", func(t *testing.T) {
		t.Parallel()

		var got []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				got = append(got, domain)
				return nil
			},
		}

		require.NoError(t, crawl.WaitForURL(context.Background(), limiter, "https://books.example:8443/a?page=2"))
		require.NoError(t, crawl.WaitForURL(context.Background(), limiter, "http://films.example/"))

		assert.Equal(t, []string{"books.example:8443", "films.example"}, got)
	})

	t.Run("nil limiter only checks the context", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, crawl.WaitForURL(context.Background(), nil, "https://books.example"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, crawl.WaitForURL(ctx, nil, "https://books.example"), context.Canceled)
	})

	t.Run("rejects unparseable URLs", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{
			WaitFn: func(context.Context, string) error {
				t.Fatal("limiter should not be called")
				return nil
			},
		}

		err := crawl.WaitForURL(context.Background(), limiter, "http://bad host\x7f/")

		assert.Equal(t, xwrap.EINVALID, xwrap.ErrorCode(err))
	})
}
