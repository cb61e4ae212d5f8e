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
	"github.com/fwojciec/tabdoc"
	"github.com/fwojciec/tabdoc/crawl"
	"github.com/fwojciec/tabdoc/fs"
	"github.com/fwojciec/tabdoc/goquery"
	"github.com/fwojciec/tabdoc/htmltomarkdown"
	tabhttp "github.com/fwojciec/tabdoc/http"
	tabslog "github.com/fwojciec/tabdoc/slog"
	"github.com/fwojciec/tabdoc/sqlite"
	"github.com/fwojciec/tabdoc/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the document history service.
	DB *sqlite.DB

	// Service for end-to-end testing.
	DocumentService tabdoc.DocumentService
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tabdoc"),
		kong.Description("Extract documentation pages to markdown, keeping only chosen language tabs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided. Run 'tabdoc --help' to see usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Logger writes to stderr only in verbose mode.
	logOut := io.Discard
	if cli.Verbose {
		logOut = stderr
	}
	deps.Logger = slog.New(slog.NewTextHandler(logOut, nil))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TABDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.Documents = m.DocumentService

	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")
	switch cmd {
	case "extract":
		m.wireExtract(deps, cli)
	case "site":
		m.wireSite(deps, cli)
	}

	return kongCtx.Run(deps)
}

// wireExtract sets up the single-page extraction pipeline.
func (m *Main) wireExtract(deps *Dependencies, cli *CLI) {
	deps.Fetcher = tabslog.NewLoggingFetcher(
		tabhttp.NewFetcher(tabhttp.WithTimeout(cli.Timeout)), deps.Logger)
	deps.Extractor = tabslog.NewLoggingExtractor(newEngine(cli.Extract.Engine), deps.Logger)
	deps.Detector = tabslog.NewLoggingLanguageDetector(goquery.NewDetector(), deps.Logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Writer = fs.NewWriter(cli.Extract.Output)
	deps.Picker = &TerminalPicker{In: deps.Stdin, Out: deps.Stdout}
}

// wireSite sets up the batch extraction pipeline.
func (m *Main) wireSite(deps *Dependencies, cli *CLI) {
	deps.Sitemaps = tabslog.NewLoggingSitemapService(tabhttp.NewSitemapService(nil), deps.Logger)
	deps.Fetcher = tabslog.NewLoggingFetcher(
		tabhttp.NewFetcher(tabhttp.WithTimeout(cli.Timeout)), deps.Logger)

	deps.Runner = &crawl.Runner{
		Sitemaps:    deps.Sitemaps,
		Fetcher:     deps.Fetcher,
		Extractor:   tabslog.NewLoggingExtractor(newEngine(cli.Site.Engine), deps.Logger),
		Converter:   htmltomarkdown.NewConverter(),
		Writer:      fs.NewWriter(cli.Site.Output),
		Documents:   deps.Documents,
		RateLimiter: crawl.NewDomainLimiter(cli.Site.Rate),
		Concurrency: cli.Site.Concurrency,
	}
}

// newEngine picks the content extraction engine.
func newEngine(name string) tabdoc.Extractor {
	if name == "trafilatura" {
		return trafilatura.NewExtractor()
	}
	return goquery.NewExtractor()
}

func defaultDBPath() string {
	if path := os.Getenv("TABDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tabdoc.db"
	}
	dir := filepath.Join(home, ".tabdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tabdoc.db")
}
