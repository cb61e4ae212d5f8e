package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/tabdoc"
)

var _ tabdoc.LanguagePicker = (*TerminalPicker)(nil)

// TerminalPicker prompts for a language selection on the terminal with a
// numbered menu of the languages detected on the page.
type TerminalPicker struct {
	In  io.Reader
	Out io.Writer
}

// Pick shows the menu and reads a selection. Space-separated numbers pick
// specific languages; "all" or an empty line picks every detected language.
func (p *TerminalPicker) Pick(ctx context.Context, available []tabdoc.Language) ([]tabdoc.Language, error) {
	if len(available) == 0 {
		fmt.Fprintln(p.Out, "No programming languages detected on this page.")
		return nil, nil
	}

	fmt.Fprintln(p.Out, "Languages on this page:")
	for i, lang := range available {
		fmt.Fprintf(p.Out, "  %d. %s\n", i+1, lang.Display())
	}
	fmt.Fprintln(p.Out, "Enter numbers (e.g. '1 3'), 'all', or press Enter for all.")

	scanner := bufio.NewScanner(p.In)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprint(p.Out, "Your choice: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, tabdoc.Errorf(tabdoc.EINTERNAL, "reading selection: %v", err)
			}
			// EOF means take everything.
			return available, nil
		}

		selection := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if selection == "" || selection == "all" {
			return available, nil
		}

		picked, err := parseSelection(selection, available)
		if err != nil {
			fmt.Fprintf(p.Out, "%v\n", err)
			continue
		}
		return picked, nil
	}
}

// parseSelection maps space-separated 1-based menu numbers to languages.
func parseSelection(selection string, available []tabdoc.Language) ([]tabdoc.Language, error) {
	var picked []tabdoc.Language
	seen := make(map[tabdoc.Language]bool)

	for _, part := range strings.Fields(selection) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid input %q: enter numbers or 'all'", part)
		}
		if n < 1 || n > len(available) {
			return nil, fmt.Errorf("invalid selection %d: choose numbers between 1 and %d", n, len(available))
		}
		lang := available[n-1]
		if !seen[lang] {
			seen[lang] = true
			picked = append(picked, lang)
		}
	}

	return picked, nil
}
