package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/xwrap"
	"golang.org/x/time/rate"
)

var _ xwrap.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps fetches polite with one token bucket per host.
// Requests to different hosts proceed concurrently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// WaitForURL waits on limiter for the host of rawURL.
// A nil limiter never blocks.
func WaitForURL(ctx context.Context, limiter xwrap.DomainLimiter, rawURL string) error {
	if limiter == nil {
		return ctx.Err()
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return xwrap.Errorf(xwrap.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return limiter.Wait(ctx, u.Host)
}
