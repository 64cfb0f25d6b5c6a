package main

import (
	"fmt"

	"github.com/fwojciec/xwrap"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var mapping xwrap.Mapping
	if c.Mapping != "" {
		m, err := deps.Mappings.LoadMapping(c.Mapping)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
			return err
		}
		mapping = m
	} else {
		wrapper, err := findWrapper(deps, c.Name)
		if err != nil {
			return err
		}
		mapping = wrapper.Mapping
	}

	fields, err := deps.Extractor.Extract(deps.Ctx, c.URL, mapping)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	for _, field := range mapping.Fields() {
		fmt.Fprintf(deps.Stdout, "%s: %s\n", field, fields[field])
	}
	return nil
}
