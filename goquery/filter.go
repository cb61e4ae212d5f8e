package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabdoc"
	"golang.org/x/net/html"
)

// FilterLanguages removes heading-delimited sections that belong to languages
// outside the keep set, in place. An empty keep set means no filtering was
// requested and the selection is returned untouched.
//
// Every h1-h6 inside the selection is classified: headings matching a kept
// language are retained, headings matching any other language are dropped
// together with their section, and headings matching no language are left
// alone. A heading matching both a kept and an unkept language is retained
// (keep wins on ambiguous headings).
func FilterLanguages(sel *goquery.Selection, keep []tabdoc.Language) *goquery.Selection {
	if sel == nil || sel.Length() == 0 || len(keep) == 0 {
		return sel
	}

	kept := make(map[tabdoc.Language]bool, len(keep))
	for _, lang := range keep {
		kept[lang] = true
	}

	// Collect heading nodes up front: removal mutates the tree under us.
	var headings []*html.Node
	sel.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, s.Get(0))
	})

	root := sel.Get(0)
	for _, h := range headings {
		// Skip headings already removed as part of an earlier section.
		if !attached(root, h) {
			continue
		}

		text := strings.ToLower(compactText(nodeText(h)))
		if matchesAny(text, keep) {
			continue
		}
		drop := false
		for _, lang := range tabdoc.Languages() {
			if !kept[lang] && matchesVariants(text, lang) {
				drop = true
				break
			}
		}
		if !drop {
			// Untagged heading: not a language section.
			continue
		}

		removeSection(h)
	}

	return sel
}

// matchesAny reports whether text contains a variant of any listed language.
func matchesAny(text string, langs []tabdoc.Language) bool {
	for _, lang := range langs {
		if matchesVariants(text, lang) {
			return true
		}
	}
	return false
}

// matchesVariants reports whether text contains any variant spelling of the
// language. Text must already be lower-cased.
func matchesVariants(text string, lang tabdoc.Language) bool {
	for _, v := range lang.Variants() {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}

// removeSection removes the heading and every following sibling up to (but
// excluding) the next heading of equal or shallower level. A section with no
// qualifying next heading extends to the end of the parent. A heading with no
// content siblings yields an empty section; only the heading is removed.
func removeSection(h *html.Node) {
	level := headingLevel(h)

	var doomed []*html.Node
	doomed = append(doomed, h)
	for sib := h.NextSibling; sib != nil; sib = sib.NextSibling {
		if sibLevel := headingLevel(sib); sibLevel != 0 && sibLevel <= level {
			break
		}
		doomed = append(doomed, sib)
	}

	for _, n := range doomed {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

// headingLevel returns 1..6 for h1..h6 element nodes and 0 for anything else.
func headingLevel(n *html.Node) int {
	if n.Type != html.ElementNode || len(n.Data) != 2 || n.Data[0] != 'h' {
		return 0
	}
	if n.Data[1] < '1' || n.Data[1] > '6' {
		return 0
	}
	return int(n.Data[1] - '0')
}

// nodeText concatenates the text content of a node's subtree in document
// order.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
