package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/crawl"
)

// maxValueWidth bounds field values in the summary listing.
const maxValueWidth = 72

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	wrapper, err := findWrapper(deps, c.Name)
	if err != nil {
		return err
	}

	records, err := deps.Records.FindRecords(deps.Ctx, xwrap.RecordFilter{
		WrapperID: &wrapper.ID,
		Limit:     c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetEscapeHTML(false)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "No records for %s. Use 'xwrap crawl %s <url>' to extract some.\n", c.Name, c.Name)
		return nil
	}

	fields := wrapper.Mapping.Fields()
	fmt.Fprintf(deps.Stdout, "Records for %s (%d total):\n\n", c.Name, len(records))
	for i, r := range records {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n", i+1, r.SourceURL)
		for _, field := range fields {
			fmt.Fprintf(deps.Stdout, "     %s: %s\n", field, crawl.TruncateText(r.Fields[field], maxValueWidth))
		}
	}
	return nil
}
