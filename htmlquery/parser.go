// Package htmlquery resolves XPath expressions against parsed HTML using
// antchfx/htmlquery.
package htmlquery

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/fwojciec/xwrap"
	"golang.org/x/net/html"
)

// Ensure Parser implements xwrap.Parser at compile time.
var _ xwrap.Parser = (*Parser)(nil)

// Parser parses HTML with golang.org/x/net/html, the same parser goquery
// uses, so paths derived from goquery documents resolve against the trees
// it produces.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses markup into a Document. Malformed markup is repaired the way
// browsers do; only read failures are reported.
func (p *Parser) Parse(markup string) (xwrap.Document, error) {
	root, err := htmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, xwrap.Errorf(xwrap.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(root), nil
}

// Ensure Document implements xwrap.Document at compile time.
var _ xwrap.Document = (*Document)(nil)

// Document is a parsed HTML tree.
type Document struct {
	root *html.Node
}

// NewDocument wraps an already parsed tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root}
}

// Resolve evaluates expr and returns the text of each matched node.
// Text nodes yield their content, other nodes their inner text.
func (d *Document) Resolve(expr string) ([]string, error) {
	nodes, err := htmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, xwrap.Errorf(xwrap.EINVALID, "invalid path expression %q: %v", expr, err)
	}

	texts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == html.TextNode {
			texts = append(texts, n.Data)
			continue
		}
		texts = append(texts, htmlquery.InnerText(n))
	}
	return texts, nil
}
