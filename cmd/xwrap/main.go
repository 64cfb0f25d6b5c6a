package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/xwrap"
	"github.com/fwojciec/xwrap/crawl"
	"github.com/fwojciec/xwrap/fs"
	"github.com/fwojciec/xwrap/goquery"
	"github.com/fwojciec/xwrap/htmlquery"
	xhttp "github.com/fwojciec/xwrap/http"
	"github.com/fwojciec/xwrap/induce"
	"github.com/fwojciec/xwrap/rod"
	xslog "github.com/fwojciec/xwrap/slog"
	"github.com/fwojciec/xwrap/sqlite"
)

// requestsPerSecond is the per-domain fetch rate for training and crawling.
const requestsPerSecond = 2.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher, if set, replaces the static HTTP fetcher. Used for
	// end-to-end testing.
	Fetcher xwrap.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("xwrap"),
		kong.Description("Learn XPath wrappers from example pages and apply them to new pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'xwrap --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.Parser = htmlquery.NewParser()
	deps.Mappings = fs.NewMappingStore()

	if cmd != "inspect" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set XWRAP_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.DB = m.DB
		deps.Wrappers = sqlite.NewWrapperService(m.DB)
		deps.Records = sqlite.NewRecordService(m.DB)
	}

	limiter := crawl.NewDomainLimiter(requestsPerSecond)

	switch cmd {
	case "train":
		loader, err := m.newPageLoader(cli.Train.Rendered, logger, stderr)
		if err != nil {
			return err
		}
		defer loader.Close()

		deps.Trainer = &induce.Trainer{
			Loader:      loader,
			Parser:      deps.Parser,
			RateLimiter: limiter,
			Logger:      logger,
			Concurrency: cli.Train.Concurrency,
		}

	case "inspect":
		loader, err := m.newPageLoader(cli.Inspect.Rendered, logger, stderr)
		if err != nil {
			return err
		}
		defer loader.Close()

		deps.Loader = loader

	case "extract":
		fetcher, err := m.newFetcher(cli.Extract.Rendered, logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Extractor = &crawl.Extractor{
			Fetcher:     fetcher,
			Parser:      deps.Parser,
			RateLimiter: limiter,
		}

	case "crawl":
		fetcher, err := m.newFetcher(cli.Crawl.Rendered, logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Sitemaps:    xslog.NewLoggingSitemapService(xhttp.NewSitemapService(nil), logger),
			Fetcher:     fetcher,
			Parser:      deps.Parser,
			Records:     deps.Records,
			RateLimiter: limiter,
			Concurrency: cli.Crawl.Concurrency,
			MaxPages:    cli.Crawl.MaxPages,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the fetcher for a command: a headless browser when
// rendered is set, plain HTTP otherwise.
func (m *Main) newFetcher(rendered bool, logger *slog.Logger, stderr io.Writer) (xwrap.Fetcher, error) {
	if rendered {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return xslog.NewLoggingFetcher(fetcher, logger), nil
	}

	var fetcher xwrap.Fetcher = xhttp.NewFetcher()
	if m.Fetcher != nil {
		fetcher = m.Fetcher
	}
	return xslog.NewLoggingFetcher(fetcher, logger), nil
}

// newPageLoader returns the page loader for a command. Rendered pages carry
// visual attributes on their features.
func (m *Main) newPageLoader(rendered bool, logger *slog.Logger, stderr io.Writer) (xwrap.PageLoader, error) {
	if rendered {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return xslog.NewLoggingPageLoader(rod.NewPageLoader(fetcher, logger), logger), nil
	}

	fetcher, err := m.newFetcher(false, logger, stderr)
	if err != nil {
		return nil, err
	}
	return xslog.NewLoggingPageLoader(goquery.NewPageLoader(fetcher), logger), nil
}

func defaultDBPath() string {
	if path := os.Getenv("XWRAP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "xwrap.db"
	}
	dir := filepath.Join(home, ".xwrap")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "xwrap.db")
}
