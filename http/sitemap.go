package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/xwrap"
)

// maxSitemapDepth bounds how deeply nested sitemap indexes are followed.
const maxSitemapDepth = 5

// Ensure SitemapService implements xwrap.SitemapService.
var _ xwrap.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from website sitemaps via HTTP.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, userAgent: DefaultUserAgent}
}

// DiscoverURLs finds all page URLs from a site's sitemap, in sitemap order
// and without duplicates. Returns an empty slice (not nil) if no sitemap
// is found.
//
// When baseURL has a non-root path (e.g., https://example.com/quotes/),
// only URLs under that path are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *xwrap.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, xwrap.Errorf(xwrap.EINVALID, "invalid base URL %q", baseURL)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	root := *base
	root.Path = ""
	root.RawQuery = ""
	root.Fragment = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seenURLs := make(map[string]bool)
	seenSitemaps := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps, 0)
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			if pathPrefix != "" && !matchesPathPrefix(u, pathPrefix) {
				continue
			}
			if !filter.Match(u) {
				continue
			}
			urls = append(urls, u)
		}
	}

	return urls, nil
}

// matchesPathPrefix checks if a URL's path is under prefix, respecting path
// boundaries: /quotes matches /quotes/ and /quotes/page/2 but not /quotesx.
func matchesPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	prefix = strings.TrimSuffix(prefix, "/")
	return parsed.Path == prefix || strings.HasPrefix(parsed.Path, prefix+"/")
}

// findSitemapURLs reads Sitemap: directives from robots.txt, falling back to
// /sitemap.xml when robots.txt names none.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	sitemapURL := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	exists, err := s.urlExists(ctx, sitemapURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if !exists {
		return nil, nil
	}
	return []string{sitemapURL}, nil
}

func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) <= len(directive) || !strings.EqualFold(line[:len(directive)], directive) {
			continue
		}
		if u := strings.TrimSpace(line[len(directive):]); u != "" {
			sitemaps = append(sitemaps, u)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// processSitemap fetches a sitemap and returns its page URLs, following
// sitemap indexes recursively.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] || depth > maxSitemapDepth {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, xwrap.Errorf(xwrap.EINVALID, "parsing sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, xwrap.Errorf(xwrap.EINVALID, "empty sitemap %s", sitemapURL)
	}

	if root.Tag != "sitemapindex" {
		return locations(root, "url"), nil
	}

	var urls []string
	for _, child := range locations(root, "sitemap") {
		found, err := s.processSitemap(ctx, child, seen, depth+1)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}
	return urls, nil
}

// locations returns the non-empty <loc> values of root's entry elements.
func locations(root *etree.Element, entry string) []string {
	var locs []string
	for _, el := range root.SelectElements(entry) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			locs = append(locs, u)
		}
	}
	return locs
}

// get performs a GET request and returns the body of a 200 response.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	resp, err := s.do(ctx, http.MethodGet, targetURL)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &xwrap.FetchError{
			URL:        targetURL,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	return resp.Body, nil
}

// urlExists checks if a URL answers HEAD with 200 OK.
func (s *SitemapService) urlExists(ctx context.Context, targetURL string) (bool, error) {
	resp, err := s.do(ctx, http.MethodHead, targetURL)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

func (s *SitemapService) do(ctx context.Context, method, targetURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	return s.client.Do(req)
}
