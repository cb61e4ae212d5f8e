package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// residualTags are the generic container tags eligible for phrase-based
// removal. Phrase matches inside any other tag are left alone.
var residualTags = map[string]bool{
	"div":     true,
	"section": true,
	"aside":   true,
	"nav":     true,
}

// Cleaner removes navigation chrome and boilerplate from a subtree in place.
type Cleaner struct {
	cfg Config
}

// NewCleaner creates a Cleaner with the given configuration.
func NewCleaner(cfg Config) *Cleaner {
	return &Cleaner{cfg: cfg}
}

// Clean strips chrome from the selection in place and returns it for
// chaining. A nil or empty selection is a no-op. Cleaning is idempotent:
// a second pass removes nothing further.
func (c *Cleaner) Clean(sel *goquery.Selection) *goquery.Selection {
	if sel == nil || sel.Length() == 0 {
		return sel
	}

	// Non-content tags go unconditionally.
	sel.Find("script, style").Remove()

	// Structural chrome by selector.
	for _, selector := range c.cfg.ChromeSelectors {
		sel.Find(selector).Remove()
	}

	// Residual pass: short generic containers whose text matches a known
	// chrome phrase. Elements with substantial text are presumed content
	// and skipped regardless of phrase matches.
	root := sel.Get(0)
	sel.Find("div, section, aside, nav").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if !attached(root, n) || !residualTags[n.Data] {
			return
		}
		text := compactText(s.Text())
		if len(text) > c.cfg.ChromeTextLimit {
			return
		}
		text = strings.ToLower(text)
		for _, phrase := range c.cfg.ChromePhrases {
			if strings.Contains(text, phrase) {
				s.Remove()
				return
			}
		}
	})

	return sel
}

// attached reports whether n is still a descendant of root. Nodes removed
// earlier in a pass (as part of a removed ancestor) must not be re-processed.
func attached(root, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// compactText collapses whitespace runs to single spaces and trims the ends,
// so phrase matching is insensitive to markup-induced whitespace.
func compactText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// textLen returns the number of non-whitespace characters in the selection's
// text, the score used for candidate ranking.
func textLen(sel *goquery.Selection) int {
	n := 0
	for _, r := range sel.Text() {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
