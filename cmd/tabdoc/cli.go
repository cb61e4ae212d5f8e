package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/tabdoc"
	"github.com/fwojciec/tabdoc/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   tabdoc.Fetcher
	Extractor tabdoc.Extractor
	Detector  tabdoc.LanguageDetector
	Converter tabdoc.Converter
	Writer    tabdoc.DocumentWriter
	Documents tabdoc.DocumentService
	Sitemaps  tabdoc.SitemapService
	Picker    tabdoc.LanguagePicker
	Runner    *crawl.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log pipeline stages to stderr"`
	Timeout time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`

	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract a documentation page to markdown"`
	Site    SiteCmd    `cmd:"" help:"Extract every page under a site's sitemap"`
	List    ListCmd    `cmd:"" help:"List past extraction runs"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an extraction record"`
}

// ExtractCmd is the "extract" subcommand (also the default command).
type ExtractCmd struct {
	URL         string   `arg:"" help:"Documentation page URL"`
	Languages   []string `short:"l" help:"Languages to keep (repeatable); sections for other languages are removed"`
	Interactive bool     `short:"i" help:"Choose languages from a menu of those detected on the page"`
	Output      string   `short:"o" default:"." help:"Output directory"`
	Engine      string   `default:"devsite" enum:"devsite,trafilatura" help:"Content extraction engine"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	URL         string   `arg:"" help:"Base documentation URL (sitemap discovery root)"`
	Languages   []string `short:"l" help:"Languages to keep (repeatable)"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Output      string   `short:"o" default:"." help:"Output directory"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent extraction limit"`
	Rate        float64  `default:"1.0" help:"Requests per second per domain"`
	Engine      string   `default:"devsite" enum:"devsite,trafilatura" help:"Content extraction engine"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL string `short:"u" optional:"" help:"Only show runs for this source URL"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Extraction record ID"`
}
