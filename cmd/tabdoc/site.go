package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/tabdoc"
	"github.com/fwojciec/tabdoc/crawl"
)

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	keep, unknown := tabdoc.ParseLanguages(c.Languages)
	for _, name := range unknown {
		fmt.Fprintf(deps.Stderr, "warning: unknown language %q ignored\n", name)
	}

	// Compile filters early so bad patterns fail before any network work.
	var urlFilter *tabdoc.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &tabdoc.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	progress := func(p tabdoc.ExtractProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", p.URL, p.Error)
			return
		}
		fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", p.Completed, p.Total, crawl.TruncateURL(p.URL, 60))
	}

	result, err := deps.Runner.Run(deps.Ctx, c.URL, keep, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabdoc.ErrorMessage(err))
		return err
	}

	if result.Saved == 0 && result.Failed == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages (%s)", result.Saved, crawl.FormatBytes(result.Bytes))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, ", %d failed", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
