package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the inspect command. It prints the page's content leaves
// as a JSON array, the input the trainer matches expected values against.
func (c *InspectCmd) Run(deps *Dependencies) error {
	page, err := deps.Loader.Load(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if page.Features == nil {
		return enc.Encode([]any{})
	}
	return enc.Encode(page.Features)
}
