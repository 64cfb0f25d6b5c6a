// Package bloom provides URL deduplication using Bloom filters.
package bloom

import (
	"net/url"

	"github.com/bits-and-blooms/bloom/v3"
)

// URLSet remembers visited URLs in a Bloom filter. Fragments are ignored,
// so https://example.com/a#top and https://example.com/a are the same page.
//
// False positives are possible: a URL never visited may be reported as
// seen at roughly the configured rate. False negatives are not.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a URLSet sized for n expected URLs with the given
// false positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	if n == 0 {
		n = 1
	}
	return &URLSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Visit marks rawURL as seen and reports whether it was new.
func (s *URLSet) Visit(rawURL string) bool {
	return !s.f.TestOrAddString(normalize(rawURL))
}

// Seen reports whether rawURL might have been visited.
func (s *URLSet) Seen(rawURL string) bool {
	return s.f.TestString(normalize(rawURL))
}

// EstimatedCount returns the approximate number of URLs visited.
func (s *URLSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}

func normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
