package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/xwrap"
	xwraphttp "github.com/fwojciec/xwrap/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookHTML = `<html><body><span>Dune</span><p>Frank Herbert</p></body></html>`

// bookServer serves a book page, echoes the user agent and answers
// /status/<code> with that status.
func bookServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/book", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(bookHTML))
	})
	mux.HandleFunc("/agent", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.UserAgent()))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(bookHTML))
	})
	mux.HandleFunc("/status/404", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	mux.HandleFunc("/status/503", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := bookServer(t)

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		html, err := xwraphttp.NewFetcher().Fetch(context.Background(), srv.URL+"/book")

		require.NoError(t, err)
		assert.Equal(t, bookHTML, html)
	})

	t.Run("identifies itself", func(t *testing.T) {
		t.Parallel()

		agent, err := xwraphttp.NewFetcher().Fetch(context.Background(), srv.URL+"/agent")
		require.NoError(t, err)
		assert.Equal(t, xwraphttp.DefaultUserAgent, agent)

		agent, err = xwraphttp.NewFetcher(xwraphttp.WithUserAgent("bookbot/0.1")).Fetch(context.Background(), srv.URL+"/agent")
		require.NoError(t, err)
		assert.Equal(t, "bookbot/0.1", agent)
	})

	t.Run("reports error statuses", func(t *testing.T) {
		t.Parallel()

		for path, status := range map[string]int{
			"/status/404": http.StatusNotFound,
			"/status/503": http.StatusServiceUnavailable,
		} {
			url := srv.URL + path

			_, err := xwraphttp.NewFetcher().Fetch(context.Background(), url)

			var fetchErr *xwrap.FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, status, fetchErr.StatusCode)
			assert.Equal(t, http.StatusText(status), fetchErr.Status)
			assert.Equal(t, url, fetchErr.URL)
			assert.Equal(t, xwrap.EFETCH, xwrap.ErrorCode(err))
		}
	})

	t.Run("times out", func(t *testing.T) {
		t.Parallel()

		fetcher := xwraphttp.NewFetcher(xwraphttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), srv.URL+"/slow")

		assert.Equal(t, xwrap.EFETCH, xwrap.ErrorCode(err))
	})

	t.Run("returns context errors unwrapped", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := xwraphttp.NewFetcher().Fetch(ctx, srv.URL+"/slow")

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("reports unreachable hosts", func(t *testing.T) {
		t.Parallel()

		fetcher := xwraphttp.NewFetcher(xwraphttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://books.invalid/1")

		assert.Equal(t, xwrap.EFETCH, xwrap.ErrorCode(err))
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		t.Parallel()

		_, err := xwraphttp.NewFetcher().Fetch(context.Background(), "http://bad host\x7f/")

		assert.Equal(t, xwrap.EINVALID, xwrap.ErrorCode(err))
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	assert.NoError(t, xwraphttp.NewFetcher().Close())
}
