package rod

import (
	"strconv"
	"strings"

	"github.com/fwojciec/xwrap"
)

// ParseFontSize parses a computed CSS font size such as "16px".
func ParseFontSize(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0, xwrap.Errorf(xwrap.EINVALID, "invalid font size %q", s)
	}
	return v, nil
}

// ParseColor converts a computed CSS color in rgb() or rgba() form to the
// mean of its red, green and blue channels scaled to 0-1. Alpha is ignored.
func ParseColor(s string) (float64, error) {
	s = strings.TrimSpace(s)

	var args string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[len("rgb(") : len(s)-1]
	default:
		return 0, xwrap.Errorf(xwrap.EINVALID, "unsupported color %q", s)
	}

	parts := strings.Split(args, ",")
	if len(parts) < 3 {
		return 0, xwrap.Errorf(xwrap.EINVALID, "invalid color %q", s)
	}

	var sum float64
	for _, p := range parts[:3] {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, xwrap.Errorf(xwrap.EINVALID, "invalid color channel in %q", s)
		}
		sum += v
	}
	return sum / (255 * 3), nil
}

// computedStyle is the raw style and geometry read from the live page.
type computedStyle struct {
	Path      string  `json:"path"`
	Found     bool    `json:"found"`
	FontSize  string  `json:"fontSize"`
	FontStyle string  `json:"fontStyle"`
	Color     string  `json:"color"`
	Class     string  `json:"className"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// visual converts the raw style into parsed visual attributes.
func (c computedStyle) visual() (*xwrap.Visual, error) {
	fontSize, err := ParseFontSize(c.FontSize)
	if err != nil {
		return nil, err
	}
	color, err := ParseColor(c.Color)
	if err != nil {
		return nil, err
	}
	return &xwrap.Visual{
		FontSize:  fontSize,
		FontStyle: c.FontStyle,
		Color:     color,
		Class:     c.Class,
		X:         c.X,
		Y:         c.Y,
		Width:     c.Width,
		Height:    c.Height,
	}, nil
}

// computedStyleScript locates each XPath in the live document and reads its
// computed style and bounding box. It returns a JSON string.
const computedStyleScript = `(paths) => {
	const results = paths.map((path) => {
		const el = document.evaluate(path, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue;
		if (!el || el.nodeType !== Node.ELEMENT_NODE) {
			return {path: path, found: false};
		}
		const style = window.getComputedStyle(el);
		const rect = el.getBoundingClientRect();
		return {
			path: path,
			found: true,
			fontSize: style.fontSize,
			fontStyle: style.fontStyle,
			color: style.color,
			className: el.getAttribute('class') || '',
			x: rect.x,
			y: rect.y,
			width: rect.width,
			height: rect.height
		};
	});
	return JSON.stringify(results);
}`
