package crawl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// HashFields computes a hash of extracted field values that does not
// depend on map iteration order.
func HashFields(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	h := xxhash.New()
	for _, name := range names {
		_, _ = h.WriteString(name)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(fields[name])
		_, _ = h.WriteString("\x00")
	}
	return fmt.Sprintf("%x", h.Sum64())
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// TruncateText shortens a value for single-line display, collapsing
// whitespace and cutting on rune boundaries.
func TruncateText(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if maxLen <= 0 {
		return ""
	}
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
