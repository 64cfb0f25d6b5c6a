package goquery

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// NodePath returns the absolute XPath of n.
//
// Each step is the bare tag name when n (or its ancestor) is the only element
// child of its parent with that tag, and tag[i] with the 1-based position among
// same-tag siblings otherwise. Tags such as o:p are written as
// *[name()='o:p']. Text nodes are addressed through their parent
// element. Returns "" for nodes that are not inside an element.
func NodePath(n *html.Node) string {
	if n != nil && n.Type != html.ElementNode {
		n = n.Parent
	}

	var steps []string
	for child := n; child != nil && child.Type == html.ElementNode; child = child.Parent {
		steps = append(steps, pathStep(child))
	}
	if len(steps) == 0 {
		return ""
	}

	// Steps were collected leaf first.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return "/" + strings.Join(steps, "/")
}

// pathStep returns the step addressing n among its parent's children.
func pathStep(n *html.Node) string {
	if n.Parent == nil {
		return n.Data
	}

	count, position := 0, 0
	for s := n.Parent.FirstChild; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode || s.Data != n.Data {
			continue
		}
		count++
		if s == n {
			position = count
		}
	}

	step := nameTest(n.Data)
	if count == 1 {
		return step
	}
	return step + "[" + strconv.Itoa(position) + "]"
}

// nameTest returns the step selecting elements named tag. Names that are
// not plain XML names, such as o:p or fb:like, would read as namespace
// prefixes and are matched on name() instead.
func nameTest(tag string) string {
	if isNCName(tag) {
		return tag
	}
	return "*[name()=" + stringLiteral(tag) + "]"
}

func isNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

// stringLiteral quotes s as an XPath string literal.
func stringLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	return "concat('" + strings.Join(parts, `', "'", '`) + "')"
}
