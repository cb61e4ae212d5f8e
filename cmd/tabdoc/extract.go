package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/tabdoc"
	"github.com/fwojciec/tabdoc/sqlite"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	keep, unknown := tabdoc.ParseLanguages(c.Languages)
	for _, name := range unknown {
		fmt.Fprintf(deps.Stderr, "warning: unknown language %q ignored\n", name)
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
		return err
	}
	defer deps.Fetcher.Close()

	available := deps.Detector.Detect(html)
	if len(available) > 0 {
		names := make([]string, len(available))
		for i, lang := range available {
			names[i] = string(lang)
		}
		fmt.Fprintf(deps.Stdout, "Languages on page: %s\n", strings.Join(names, ", "))
	}

	if c.Interactive {
		keep, err = deps.Picker.Pick(deps.Ctx, available)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
			return err
		}
	}

	result, err := deps.Extractor.Extract(html, keep)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Converter.Convert(result.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
		return err
	}

	doc := &tabdoc.Document{
		SourceURL: c.URL,
		Title:     result.Title,
		Content:   markdown,
		Languages: keep,
		FetchedAt: time.Now(),
	}

	path, err := deps.Writer.WriteDocument(deps.Ctx, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
		return err
	}

	if deps.Documents != nil {
		if err := c.record(deps, doc, path, markdown); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %q to %s\n", doc.Title, path)
	return nil
}

// record stores the run in the history database, noting when the page
// content has not changed since the previous run for the same URL.
func (c *ExtractCmd) record(deps *Dependencies, doc *tabdoc.Document, path, markdown string) error {
	prior, err := deps.Documents.FindDocuments(deps.Ctx, tabdoc.DocumentFilter{
		SourceURL: &c.URL,
		Limit:     1,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
		return err
	}
	if len(prior) > 0 && prior[0].ContentHash == sqlite.HashContent(markdown) {
		fmt.Fprintln(deps.Stdout, "Content unchanged since last run")
	}

	doc.FilePath = path
	if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
		return err
	}
	return nil
}
