package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/goquery"
	"github.com/fwojciec/xwrap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns markup and features", func(t *testing.T) {
		t.Parallel()

		const markup = `<html><body><p>Hello</p></body></html>`
		loader := goquery.NewPageLoader(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://example.com/a", url)
				return markup, nil
			},
		})

		page, err := loader.Load(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a", page.URL)
		assert.Equal(t, markup, page.HTML)
		assert.Equal(t, []*xwrap.Feature{{Tag: "p", Path: "/html/body/p", Text: "Hello"}}, page.Features)
	})

	t.Run("returns fetch errors", func(t *testing.T) {
		t.Parallel()

		loader := goquery.NewPageLoader(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", &xwrap.FetchError{URL: url, StatusCode: 404}
			},
		})

		_, err := loader.Load(context.Background(), "https://example.com/missing")

		assert.Equal(t, xwrap.EFETCH, xwrap.ErrorCode(err))
	})
}

func TestPageLoader_Close(t *testing.T) {
	t.Parallel()

	closed := false
	loader := goquery.NewPageLoader(&mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return errors.New("already closed")
		},
	})

	err := loader.Close()

	assert.True(t, closed)
	assert.EqualError(t, err, "already closed")
}
