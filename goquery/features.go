// Package goquery implements content leaf detection, XPath derivation and
// feature extraction on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/xwrap"
)

// excludedPathMarker marks leaves that are rendering artifacts rather than
// page content.
const excludedPathMarker = "noscript"

// ExtractFeatures parses html and returns one feature per content leaf,
// in document order.
func ExtractFeatures(html string) ([]*xwrap.Feature, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, xwrap.Errorf(xwrap.EINVALID, "failed to parse HTML: %v", err)
	}
	return DocumentFeatures(doc), nil
}

// DocumentFeatures returns one feature per content leaf of doc.
func DocumentFeatures(doc *goquery.Document) []*xwrap.Feature {
	var features []*xwrap.Feature
	ContentLeaves(doc).Each(func(_ int, sel *goquery.Selection) {
		path := NodePath(sel.Get(0))
		if path == "" || strings.Contains(path, excludedPathMarker) {
			return
		}
		features = append(features, &xwrap.Feature{
			Tag:  goquery.NodeName(sel),
			Path: path,
			Text: sel.Text(),
		})
	})
	return features
}
