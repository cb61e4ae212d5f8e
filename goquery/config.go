// Package goquery implements content extraction for templated documentation
// sites using CSS selection. It locates the article body among candidate
// containers, strips navigation chrome, detects the language tabs a page
// offers, and excises heading-delimited sections for unwanted languages.
package goquery

import "regexp"

// SelectorRule describes one candidate content container. MinTextLen is the
// cleaned-text length a match must exceed to qualify; broad rules carry a
// higher threshold than specific ones because a broad match is more likely
// to be scoped wrong.
type SelectorRule struct {
	Selector   string
	MinTextLen int
}

// Config holds the template-specific selector and phrase lists. The
// extraction algorithm generalizes across documentation templates; these
// literal lists do not, so they are data rather than code.
type Config struct {
	// ContentRules are tried in order, most specific first. The first
	// qualifying rule wins ties on cleaned-text score.
	ContentRules []SelectorRule

	// ChromeSelectors match structural chrome removed unconditionally.
	ChromeSelectors []string

	// ChromePhrases are short navigation/marketing strings. A generic
	// container whose text is at most ChromeTextLimit characters and
	// contains one of these phrases is removed.
	ChromePhrases []string

	// ChromeTextLimit is the text length above which an element is presumed
	// to be real content and exempt from phrase-based removal.
	ChromeTextLimit int

	// BrandingPattern is stripped from the end of page titles.
	BrandingPattern *regexp.Regexp

	// FallbackTitle is used when the page carries no title or h1.
	FallbackTitle string
}

// DefaultConfig returns the configuration for Google devsite templates
// (firebase.google.com and similar).
func DefaultConfig() Config {
	return Config{
		ContentRules: []SelectorRule{
			{Selector: ".devsite-article-body", MinTextLen: 1000},
			{Selector: ".devsite-main-content", MinTextLen: 1000},
			{Selector: "main[role=main]", MinTextLen: 1000},
			{Selector: "main", MinTextLen: 1000},
			{Selector: "article", MinTextLen: 1000},
			{Selector: ".documentation-content", MinTextLen: 1000},
			{Selector: "#main-content", MinTextLen: 1000},
			{Selector: ".devsite-wrapper", MinTextLen: 3000},
			{Selector: "body", MinTextLen: 3000},
		},
		ChromeSelectors: []string{
			"nav",
			"header",
			"footer",
			"[role=navigation]",
			".devsite-nav",
			".devsite-footer",
			".devsite-header",
			".devsite-banner",
			".devsite-book-nav",
			".devsite-book-nav-wrapper",
			".devsite-mobile-nav",
			".devsite-mobile-nav-bottom",
			".devsite-top-logo-row",
			".devsite-utility-nav",
			".devsite-searchbox",
			".devsite-footer-promos",
			".devsite-footer-utility",
			".breadcrumb",
			".banner",
			".advertisement",
		},
		ChromePhrases: []string{
			"build more run more",
			"solutions pricing docs",
			"overview fundamentals",
			"go to console",
			"send feedback",
			"firebase console",
			"get started more",
			"firebase studio",
			"samples community",
			"support blog",
		},
		ChromeTextLimit: 200,
		BrandingPattern: regexp.MustCompile(`\s*\|\s*Firebase.*$`),
		FallbackTitle:   "Documentation",
	}
}
