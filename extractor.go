package tabdoc

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title with site branding stripped.
	Title string

	// ContentHTML is the article body as clean HTML. Navigation chrome has
	// been removed, and if a keep-set was supplied, sections belonging to
	// other languages have been excised.
	ContentHTML string

	// Selector labels the content rule that won during location, for
	// diagnostics ("main", ".devsite-article-body", "body", ...).
	Selector string
}

// Extractor extracts the article body from an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content. An empty
	// keep set means no language filtering is requested; a non-empty set
	// removes heading-delimited sections belonging to other languages.
	Extract(html string, keep []Language) (*ExtractResult, error)
}

// LanguageDetector reports which language tabs a page offers.
type LanguageDetector interface {
	// Detect scans the full document (headings, code blocks, class tokens)
	// and returns the distinct languages present, alphabetically sorted.
	// The scan is read-only and idempotent.
	Detect(html string) []Language
}
