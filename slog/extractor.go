package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/tabdoc"
)

// Ensure LoggingExtractor implements tabdoc.Extractor.
var _ tabdoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   tabdoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next tabdoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the winning selector,
// output size, and duration.
func (e *LoggingExtractor) Extract(html string, keep []tabdoc.Language) (result *tabdoc.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"languages", len(keep),
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"selector", result.Selector,
				"bytes", len(result.ContentHTML),
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, keep)
}

// Ensure LoggingLanguageDetector implements tabdoc.LanguageDetector.
var _ tabdoc.LanguageDetector = (*LoggingLanguageDetector)(nil)

// LoggingLanguageDetector wraps a LanguageDetector with debug logging.
type LoggingLanguageDetector struct {
	next   tabdoc.LanguageDetector
	logger *slog.Logger
}

// NewLoggingLanguageDetector creates a new LoggingLanguageDetector.
func NewLoggingLanguageDetector(next tabdoc.LanguageDetector, logger *slog.Logger) *LoggingLanguageDetector {
	return &LoggingLanguageDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs what it found.
func (d *LoggingLanguageDetector) Detect(html string) []tabdoc.Language {
	begin := time.Now()
	langs := d.next.Detect(html)
	d.logger.Info("language detection",
		"languages", langs,
		"duration", time.Since(begin),
	)
	return langs
}
