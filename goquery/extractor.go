package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabdoc"
)

// Ensure Extractor implements tabdoc.Extractor at compile time.
var _ tabdoc.Extractor = (*Extractor)(nil)

// Extractor extracts the article body from templated documentation pages.
// It scores candidate containers by how much text survives a trial cleaning
// pass, so a heading-laden navigation block can never outscore genuine
// content on raw length.
type Extractor struct {
	cfg     Config
	cleaner *Cleaner
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConfig replaces the default devsite configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extractor) {
		e.cfg = cfg
	}
}

// NewExtractor creates an Extractor. Without options it uses the devsite
// defaults from DefaultConfig.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	e.cleaner = NewCleaner(e.cfg)
	return e
}

// candidate is a scored trial selection of a content container.
type candidate struct {
	sel      *goquery.Selection
	selector string
	score    int
}

// Extract processes raw HTML and returns the main content. A non-empty keep
// set removes heading-delimited sections belonging to other languages; an
// empty set means no filtering.
func (e *Extractor) Extract(rawHTML string, keep []tabdoc.Language) (*tabdoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, tabdoc.Errorf(tabdoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, tabdoc.Errorf(tabdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	located, selector := e.locate(doc)

	// All mutation happens on a deep copy; the parsed document stays
	// untouched for any later use.
	working := located.Clone()
	e.cleaner.Clean(working)
	FilterLanguages(working, keep)

	contentHTML, err := goquery.OuterHtml(working)
	if err != nil {
		return nil, tabdoc.Errorf(tabdoc.EINTERNAL, "failed to render content: %v", err)
	}

	return &tabdoc.ExtractResult{
		Title:       e.title(doc),
		ContentHTML: contentHTML,
		Selector:    selector,
	}, nil
}

// locate picks the best content container. Each rule's first match is scored
// by cleaning a scratch copy and counting the text that survives; matches at
// or below the rule's threshold are discarded. The highest score wins, ties
// going to the earlier-listed (more specific) rule. If nothing qualifies the
// document body is returned unconditionally, so locate never fails on a
// document that has a body.
func (e *Extractor) locate(doc *goquery.Document) (*goquery.Selection, string) {
	var best *candidate

	for _, rule := range e.cfg.ContentRules {
		found := doc.Find(rule.Selector).First()
		if found.Length() == 0 {
			continue
		}

		trial := found.Clone()
		e.cleaner.Clean(trial)
		score := textLen(trial)
		if score <= rule.MinTextLen {
			continue
		}

		if best == nil || score > best.score {
			best = &candidate{sel: found, selector: rule.Selector, score: score}
		}
	}

	if best != nil {
		return best.sel, best.selector
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		return body, "body"
	}
	return doc.Selection, "document"
}

// title extracts the page title, stripping the site branding suffix. Falls
// back to the first h1, then to the configured default.
func (e *Extractor) title(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		if e.cfg.BrandingPattern != nil {
			t = e.cfg.BrandingPattern.ReplaceAllString(t, "")
		}
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}

	if h1 := compactText(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}

	return e.cfg.FallbackTitle
}
