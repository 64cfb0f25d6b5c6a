package xwrap_test

import (
	"testing"

	"github.com/fwojciec/xwrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateSet(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order without duplicates", func(t *testing.T) {
		t.Parallel()

		s := xwrap.NewCandidateSet()

		assert.True(t, s.Add("title", "/html/body/h1//text()"))
		assert.True(t, s.Add("title", "/html/body/div//text()"))
		assert.False(t, s.Add("title", "/html/body/h1//text()"))

		assert.Equal(t, []string{"/html/body/h1//text()", "/html/body/div//text()"}, s.Paths("title"))
		assert.Equal(t, 2, s.Len("title"))
	})

	t.Run("tracks fields independently", func(t *testing.T) {
		t.Parallel()

		s := xwrap.NewCandidateSet()
		s.Add("title", "/html/body/p//text()")

		assert.True(t, s.Add("author", "/html/body/p//text()"))
		assert.Equal(t, 1, s.Len("author"))
		assert.Empty(t, s.Paths("price"))
		assert.Zero(t, s.Len("price"))
	})
}

func TestBestPath(t *testing.T) {
	t.Parallel()

	t.Run("returns the highest score", func(t *testing.T) {
		t.Parallel()

		best, ok := xwrap.BestPath([]xwrap.ScoredPath{
			{Path: "a", Score: 0.1},
			{Path: "b", Score: 0.5},
			{Path: "c", Score: 0.2},
		})

		require.True(t, ok)
		assert.Equal(t, xwrap.ScoredPath{Path: "b", Score: 0.5}, best)
	})

	t.Run("keeps the first path on ties", func(t *testing.T) {
		t.Parallel()

		best, ok := xwrap.BestPath([]xwrap.ScoredPath{
			{Path: "a", Score: 0},
			{Path: "b", Score: 0.25},
			{Path: "c", Score: 0.25},
		})

		require.True(t, ok)
		assert.Equal(t, "b", best.Path)
	})

	t.Run("keeps the first path when all scores are zero", func(t *testing.T) {
		t.Parallel()

		best, ok := xwrap.BestPath([]xwrap.ScoredPath{{Path: "a"}, {Path: "b"}})

		require.True(t, ok)
		assert.Equal(t, "a", best.Path)
	})

	t.Run("reports empty input", func(t *testing.T) {
		t.Parallel()

		_, ok := xwrap.BestPath(nil)

		assert.False(t, ok)
	})
}
