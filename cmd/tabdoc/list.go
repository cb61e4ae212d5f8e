package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/tabdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := tabdoc.DocumentFilter{}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No extraction runs recorded.")
		return nil
	}

	for _, d := range docs {
		langs := "all"
		if len(d.Languages) > 0 {
			names := make([]string, len(d.Languages))
			for i, lang := range d.Languages {
				names[i] = string(lang)
			}
			langs = strings.Join(names, ",")
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			d.ID, d.FetchedAt.Format("2006-01-02 15:04"), langs, d.SourceURL, d.FilePath)
	}

	return nil
}
