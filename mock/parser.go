package mock

import "github.com/fwojciec/xwrap"

var (
	_ xwrap.Parser   = (*Parser)(nil)
	_ xwrap.Document = (*Document)(nil)
)

// Parser is a mock implementation of xwrap.Parser.
type Parser struct {
	ParseFn func(html string) (xwrap.Document, error)
}

func (p *Parser) Parse(html string) (xwrap.Document, error) {
	return p.ParseFn(html)
}

// Document is a mock implementation of xwrap.Document.
type Document struct {
	ResolveFn func(expr string) ([]string, error)
}

func (d *Document) Resolve(expr string) ([]string, error) {
	return d.ResolveFn(expr)
}
