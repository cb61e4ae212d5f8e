package mock

import "github.com/fwojciec/tabdoc"

var _ tabdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of tabdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string, keep []tabdoc.Language) (*tabdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string, keep []tabdoc.Language) (*tabdoc.ExtractResult, error) {
	return e.ExtractFn(html, keep)
}

var _ tabdoc.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of tabdoc.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(html string) []tabdoc.Language
}

func (d *LanguageDetector) Detect(html string) []tabdoc.Language {
	return d.DetectFn(html)
}
