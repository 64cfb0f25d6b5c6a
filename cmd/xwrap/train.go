package main

import (
	"fmt"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/fs"
)

// Run executes the train command.
func (c *TrainCmd) Run(deps *Dependencies) error {
	examples, err := fs.ReadExamples(c.Examples)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return err
	}

	existing, err := deps.Wrappers.FindWrappers(deps.Ctx, xwrap.WrapperFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 && !c.Force {
		fmt.Fprintf(deps.Stderr, "error: wrapper %q already exists. Use --force to replace it.\n", c.Name)
		return xwrap.Errorf(xwrap.EINVALID, "wrapper %q already exists", c.Name)
	}

	if c.Concurrency > 0 {
		deps.Trainer.Concurrency = c.Concurrency
	}

	fmt.Fprintf(deps.Stdout, "Training %q on %d examples\n", c.Name, len(examples))

	result, err := deps.Trainer.Train(deps.Ctx, examples)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error training: %s\n", errorText(err))
		return err
	}

	for _, sel := range result.Selections {
		fmt.Fprintf(deps.Stdout, "Best path for %s is '%s' (%g)\n", sel.Field, sel.Path, sel.Score)
	}
	for _, field := range result.Missing {
		fmt.Fprintf(deps.Stderr, "warning: no path found for %s\n", field)
	}

	if len(result.Mapping) == 0 {
		if err := c.writeMapping(deps, result.Mapping); err != nil {
			return err
		}
		fmt.Fprintln(deps.Stderr, "error: no field could be located on the example pages; wrapper not saved")
		return xwrap.Errorf(xwrap.EINVALID, "no field could be located on the example pages")
	}

	var wrapper *xwrap.Wrapper
	if len(existing) > 0 {
		wrapper, err = deps.Wrappers.UpdateWrapper(deps.Ctx, existing[0].ID, xwrap.WrapperUpdate{Mapping: result.Mapping})
		if err == nil {
			err = deps.Records.DeleteRecordsByWrapper(deps.Ctx, wrapper.ID)
		}
	} else {
		wrapper = &xwrap.Wrapper{Name: c.Name, Mapping: result.Mapping}
		err = deps.Wrappers.CreateWrapper(deps.Ctx, wrapper)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return err
	}

	if err := c.writeMapping(deps, result.Mapping); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved wrapper %q (%s)\n", wrapper.Name, wrapper.ID)
	return nil
}

// writeMapping writes the mapping file when --out is set. An empty mapping
// is written as {}.
func (c *TrainCmd) writeMapping(deps *Dependencies, m xwrap.Mapping) error {
	if c.Out == "" {
		return nil
	}
	if err := deps.Mappings.SaveMapping(c.Out, m); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing mapping: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote mapping to %s\n", c.Out)
	return nil
}

// errorText describes err for the terminal. Application errors print
// their message; others print in full.
func errorText(err error) string {
	if xwrap.ErrorCode(err) == xwrap.EINTERNAL {
		return err.Error()
	}
	return xwrap.ErrorMessage(err)
}
