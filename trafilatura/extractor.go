// Package trafilatura provides an alternate content extractor built on
// go-trafilatura's boilerplate detection instead of selector rules. It is
// useful for documentation sites whose markup the selector-based extractor
// does not know.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabdoc"
	tabdocquery "github.com/fwojciec/tabdoc/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements tabdoc.Extractor at compile time.
var _ tabdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Language
// filtering runs as a post-pass over trafilatura's output.
func (e *Extractor) Extract(rawHTML string, keep []tabdoc.Language) (*tabdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tabdoc.Errorf(tabdoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, tabdoc.Errorf(tabdoc.EINTERNAL, "content extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, tabdoc.Errorf(tabdoc.EINTERNAL, "rendering extracted content: %v", err)
		}
	}

	if len(keep) > 0 && contentHTML != "" {
		contentHTML, err = filterLanguages(contentHTML, keep)
		if err != nil {
			return nil, err
		}
	}

	return &tabdoc.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Selector:    "trafilatura",
	}, nil
}

// filterLanguages re-parses the extracted fragment and removes sections
// belonging to languages outside the keep set.
func filterLanguages(contentHTML string, keep []tabdoc.Language) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return "", tabdoc.Errorf(tabdoc.EINTERNAL, "parsing extracted content: %v", err)
	}

	body := doc.Find("body")
	tabdocquery.FilterLanguages(body, keep)

	filtered, err := body.Html()
	if err != nil {
		return "", tabdoc.Errorf(tabdoc.EINTERNAL, "rendering filtered content: %v", err)
	}
	return filtered, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
