package xwrap

import (
	"context"
	"regexp"
	"slices"
)

// SitemapService discovers page URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap.
	// It first checks robots.txt for sitemap directives, then falls back
	// to /sitemap.xml. Sitemap indexes are resolved recursively.
	//
	// If filter is nil, all URLs are returned.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects which discovered URLs a wrapper is applied to.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include and exclude patterns into a URLFilter.
// Returns nil if both lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	f := &URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid include pattern %q: %v", pattern, err)
		}
		f.Include = append(f.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid exclude pattern %q: %v", pattern, err)
		}
		f.Exclude = append(f.Exclude, re)
	}
	return f, nil
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	matches := func(re *regexp.Regexp) bool { return re.MatchString(url) }

	if len(f.Include) > 0 && !slices.ContainsFunc(f.Include, matches) {
		return false
	}
	return !slices.ContainsFunc(f.Exclude, matches)
}
