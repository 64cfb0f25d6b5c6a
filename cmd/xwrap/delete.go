package main

import (
	"fmt"

	"github.com/fwojciec/xwrap"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return xwrap.Errorf(xwrap.EINVALID, "use --force to confirm deletion")
	}

	wrapper, err := findWrapper(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Wrappers.DeleteWrapper(deps.Ctx, wrapper.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted wrapper %q\n", wrapper.Name)
	return nil
}
