package crawl_test

import (
	"testing"

	"github.com/fwojciec/xwrap/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("returns URL unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://x.com", crawl.TruncateURL("https://x.com", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		url := "https://example.com/very/long/path/to/documentation"
		result := crawl.TruncateURL(url, 20)
		assert.Equal(t, ".../to/documentation", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns URL unchanged when exactly max length", func(t *testing.T) {
		t.Parallel()
		url := "https://example.com"
		assert.Equal(t, url, crawl.TruncateURL(url, len(url)))
	})

	t.Run("returns empty string when maxLen is zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, crawl.TruncateURL("https://example.com", 0))
	})

	t.Run("returns empty string when maxLen is negative", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, crawl.TruncateURL("https://example.com", -1))
	})

	t.Run("returns prefix of URL when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		// When maxLen < 4, we can't fit "..." prefix, so return URL prefix
		assert.Equal(t, "htt", crawl.TruncateURL("https://example.com", 3))
		assert.Equal(t, "ht", crawl.TruncateURL("https://example.com", 2))
		assert.Equal(t, "h", crawl.TruncateURL("https://example.com", 1))
	})

	t.Run("handles short URL with small maxLen", func(t *testing.T) {
		t.Parallel()
		// URL shorter than maxLen should return unchanged
		assert.Equal(t, "ab", crawl.TruncateURL("ab", 3))
		assert.Equal(t, "a", crawl.TruncateURL("a", 2))
	})
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	t.Run("returns short text unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Dune", crawl.TruncateText("Dune", 10))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Frank Herbert", crawl.TruncateText("  Frank\n\t Herbert ", 20))
	})

	t.Run("cuts on rune boundaries", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Zoë Zoë...", crawl.TruncateText("Zoë Zoë Zoë", 10))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Zoë", crawl.TruncateText("Zoë Zoë", 3))
		assert.Empty(t, crawl.TruncateText("Zoë", 0))
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	t.Run("returns consistent hash for same content", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, crawl.ComputeHash("test content"), crawl.ComputeHash("test content"))
	})

	t.Run("returns different hashes for different content", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, crawl.ComputeHash("content a"), crawl.ComputeHash("content b"))
	})

	t.Run("returns hex string", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, `^[0-9a-f]+$`, crawl.ComputeHash("test"))
	})
}

func TestHashFields(t *testing.T) {
	t.Parallel()

	t.Run("is independent of insertion order", func(t *testing.T) {
		t.Parallel()

		a := map[string]string{}
		a["title"] = "Dune"
		a["author"] = "Frank Herbert"
		b := map[string]string{}
		b["author"] = "Frank Herbert"
		b["title"] = "Dune"

		assert.Equal(t, crawl.HashFields(a), crawl.HashFields(b))
	})

	t.Run("distinguishes field boundaries", func(t *testing.T) {
		t.Parallel()

		a := map[string]string{"a": "bc"}
		b := map[string]string{"ab": "c"}

		assert.NotEqual(t, crawl.HashFields(a), crawl.HashFields(b))
	})

	t.Run("changes when a value changes", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t,
			crawl.HashFields(map[string]string{"title": "Dune"}),
			crawl.HashFields(map[string]string{"title": "Emma"}))
	})
}
