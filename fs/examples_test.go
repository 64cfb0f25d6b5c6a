package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadExamples(t *testing.T) {
	t.Parallel()

	t.Run("reads examples in file order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "examples.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{"url": "https://example.com/b/1", "targets": {"title": "Dune", "author": "Frank Herbert"}},
			{"url": "https://example.com/b/2", "targets": {"title": "Zoë"}}
		]`), 0644))

		examples, err := fs.ReadExamples(path)

		require.NoError(t, err)
		require.Len(t, examples, 2)
		assert.Equal(t, "https://example.com/b/1", examples[0].URL)
		assert.Equal(t, map[string]string{"title": "Dune", "author": "Frank Herbert"}, examples[0].Targets)
		assert.Equal(t, "Zoë", examples[1].Targets["title"])
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadExamples(filepath.Join(t.TempDir(), "missing.json"))

		assert.Equal(t, xwrap.ENOTFOUND, xwrap.ErrorCode(err))
	})
}

func TestDecodeExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"malformed JSON", `[{"url": `},
		{"not an array", `{"url": "https://example.com", "targets": {"a": "b"}}`},
		{"empty array", `[]`},
		{"null entry", `[null]`},
		{"missing URL", `[{"targets": {"a": "b"}}]`},
		{"missing targets", `[{"url": "https://example.com"}]`},
		{"empty value", `[{"url": "https://example.com", "targets": {"a": ""}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fs.DecodeExamples(strings.NewReader(tt.input))

			assert.Equal(t, xwrap.EINVALID, xwrap.ErrorCode(err))
		})
	}
}
