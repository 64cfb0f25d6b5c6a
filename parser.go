package xwrap

// Parser parses HTML into documents that path expressions can be resolved
// against. Malformed markup is recovered from, never rejected.
type Parser interface {
	Parse(html string) (Document, error)
}

// Document is a parsed page.
type Document interface {
	// Resolve evaluates the path expression and returns the text of the
	// matched nodes in document order.
	// Returns EINVALID if the expression cannot be compiled.
	Resolve(expr string) ([]string, error)
}
