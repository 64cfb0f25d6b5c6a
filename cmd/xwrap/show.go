package main

import (
	"fmt"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/fs"
)

// Run executes the show command. The mapping is printed in the mapping
// file format, so the output can be saved and used with extract --mapping.
func (c *ShowCmd) Run(deps *Dependencies) error {
	wrapper, err := findWrapper(deps, c.Name)
	if err != nil {
		return err
	}

	data, err := fs.EncodeMapping(wrapper.Mapping)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return err
	}

	_, err = deps.Stdout.Write(data)
	return err
}
