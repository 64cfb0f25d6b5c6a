package induce_test

import (
	"testing"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/goquery"
	"github.com/stretchr/testify/require"
)

// entry builds a dataset entry from markup, extracting features the same
// way the page loaders do.
func entry(t *testing.T, url, html string, targets map[string]string) *xwrap.DatasetEntry {
	t.Helper()

	features, err := goquery.ExtractFeatures(html)
	require.NoError(t, err)

	return &xwrap.DatasetEntry{
		URL:      url,
		Targets:  targets,
		Features: features,
		HTML:     html,
	}
}
