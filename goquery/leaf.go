package goquery

import "github.com/PuerkitoBio/goquery"

// leafTags are the elements considered as content leaf candidates.
var leafTags = map[string]bool{
	"div":  true,
	"p":    true,
	"span": true,
}

// formattingTags are inline presentation elements treated as part of the
// enclosing leaf's own text rather than as structural children.
var formattingTags = map[string]bool{
	"b":      true,
	"big":    true,
	"i":      true,
	"small":  true,
	"abbr":   true,
	"cite":   true,
	"code":   true,
	"em":     true,
	"strong": true,
	"br":     true,
	"q":      true,
	"sub":    true,
	"sup":    true,
}

// ContentLeaves returns the content leaves of doc in document order.
func ContentLeaves(doc *goquery.Document) *goquery.Selection {
	return doc.Find("*").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return IsContentLeaf(sel)
	})
}

// IsContentLeaf reports whether the first element of sel is a content leaf:
// a div, p or span with text whose descendants are only inline formatting
// elements, or a single link.
func IsContentLeaf(sel *goquery.Selection) bool {
	if sel.Length() == 0 || !leafTags[goquery.NodeName(sel)] {
		return false
	}
	sel = sel.First()
	if sel.Text() == "" {
		return false
	}

	structural := sel.Find("*").FilterFunction(func(_ int, child *goquery.Selection) bool {
		return !formattingTags[goquery.NodeName(child)]
	})
	switch structural.Length() {
	case 0:
		return true
	case 1:
		return goquery.NodeName(structural) == "a"
	default:
		return false
	}
}
