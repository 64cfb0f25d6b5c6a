package xwrap

// Feature describes one content leaf of a page.
type Feature struct {
	Tag  string `json:"name"`
	Path string `json:"xpath"`
	Text string `json:"text"`

	// Visual is only populated when the page was rendered in a browser.
	Visual *Visual `json:"visual,omitempty"`
}

// Visual holds the rendered style and geometry of a content leaf.
type Visual struct {
	FontSize  float64 `json:"fontSize"`
	FontStyle string  `json:"fontStyle"`

	// Color is the text color's mean channel intensity, from 0 (black) to 1 (white).
	Color float64 `json:"color"`

	Class string `json:"class"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
