package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/crawl"
	"github.com/fwojciec/xwrap/induce"
	"github.com/fwojciec/xwrap/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Wrappers  xwrap.WrapperService
	Records   xwrap.RecordService
	Mappings  xwrap.MappingStore
	Parser    xwrap.Parser
	Loader    xwrap.PageLoader
	Trainer   *induce.Trainer
	Extractor *crawl.Extractor
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Train   TrainCmd   `cmd:"" help:"Learn a wrapper from labeled example pages"`
	Extract ExtractCmd `cmd:"" help:"Apply a wrapper to a page"`
	Crawl   CrawlCmd   `cmd:"" help:"Apply a wrapper to every page in a site's sitemap"`
	Records RecordsCmd `cmd:"" help:"List records extracted with a wrapper"`
	List    ListCmd    `cmd:"" help:"List all stored wrappers"`
	Show    ShowCmd    `cmd:"" help:"Print a wrapper's mapping"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a wrapper and its records"`
	Inspect InspectCmd `cmd:"" help:"Print the content leaves of a page"`
}

// TrainCmd is the "train" subcommand.
type TrainCmd struct {
	Name        string `arg:"" help:"Wrapper name"`
	Examples    string `arg:"" type:"existingfile" help:"JSON file of training examples"`
	Rendered    bool   `short:"r" help:"Render pages in a headless browser"`
	Out         string `short:"o" help:"Also write the mapping to this JSON file"`
	Force       bool   `short:"f" help:"Replace an existing wrapper with the same name"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent page loads"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Name     string `arg:"" help:"Wrapper name (ignored with --mapping)"`
	URL      string `arg:"" help:"Page URL"`
	Mapping  string `short:"m" help:"Read the mapping from this JSON file instead of the database"`
	Rendered bool   `short:"r" help:"Render the page in a headless browser"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Name        string   `arg:"" help:"Wrapper name"`
	URL         string   `arg:"" help:"Site URL"`
	Filter      []string `short:"F" name:"filter" help:"Only crawl URLs matching regex (repeatable)"`
	Exclude     []string `short:"X" name:"exclude" help:"Skip URLs matching regex (repeatable)"`
	Rendered    bool     `short:"r" help:"Render pages in a headless browser"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages    int      `name:"max-pages" help:"Stop after this many pages (0 for no limit)"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Name  string `arg:"" help:"Wrapper name"`
	JSON  bool   `help:"Print records as JSON lines"`
	Limit int    `short:"n" help:"Maximum number of records to print"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Wrapper name"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Wrapper name"`
	Force bool   `help:"Confirm deletion"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Rendered bool   `short:"r" help:"Render the page in a headless browser"`
}

// findWrapper looks up a wrapper by name, reporting failures on stderr.
func findWrapper(deps *Dependencies, name string) (*xwrap.Wrapper, error) {
	wrappers, err := deps.Wrappers.FindWrappers(deps.Ctx, xwrap.WrapperFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xwrap.ErrorMessage(err))
		return nil, err
	}
	if len(wrappers) == 0 {
		fmt.Fprintf(deps.Stderr, "error: wrapper %q not found. Use 'xwrap list' to see available wrappers.\n", name)
		return nil, xwrap.Errorf(xwrap.ENOTFOUND, "wrapper %q not found", name)
	}
	return wrappers[0], nil
}
