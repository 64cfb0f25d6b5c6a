package main

import (
	"fmt"

	"github.com/fwojciec/xwrap"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	wrappers, err := deps.Wrappers.FindWrappers(deps.Ctx, xwrap.WrapperFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return err
	}

	if len(wrappers) == 0 {
		fmt.Fprintln(deps.Stdout, "No wrappers found. Use 'xwrap train' to create one.")
		return nil
	}

	for _, w := range wrappers {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d fields  %s\n",
			w.ID, w.Name, len(w.Mapping), w.UpdatedAt.Format("2006-01-02"))
	}

	return nil
}
