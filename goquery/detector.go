package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabdoc"
)

// Ensure Detector implements tabdoc.LanguageDetector at compile time.
var _ tabdoc.LanguageDetector = (*Detector)(nil)

// Detector reports which language tabs a documentation page offers. It scans
// the full document rather than the located content region, since class-name
// signals often live in tab chrome outside the article body.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect scans headings, code blocks, and class-attribute tokens for
// language indicators and returns the distinct languages found,
// alphabetically sorted. The three sources are independent; any one of them
// can contribute a language. The scan is read-only and idempotent.
func (d *Detector) Detect(rawHTML string) []tabdoc.Language {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	found := make(map[tabdoc.Language]bool)

	mark := func(text string) {
		text = strings.ToLower(text)
		for _, lang := range tabdoc.Languages() {
			if found[lang] {
				continue
			}
			for _, indicator := range lang.Indicators() {
				if strings.Contains(text, indicator) {
					found[lang] = true
					break
				}
			}
		}
	}

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		mark(s.Text())
	})

	doc.Find("code, pre").Each(func(_ int, s *goquery.Selection) {
		mark(s.Text())
	})

	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		if class, ok := s.Attr("class"); ok {
			mark(class)
		}
	})

	langs := make([]tabdoc.Language, 0, len(found))
	for lang := range found {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}
