// Package fs writes extracted documents as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/tabdoc"
)

var (
	unsafeChars = regexp.MustCompile(`[^\w\s-]`)
	dashRuns    = regexp.MustCompile(`[-\s]+`)
)

// Filename derives a file name for an extraction. URL path segments after
// the "docs" segment are joined with dashes; query parameters and the kept
// languages are appended so that differently filtered extractions of the
// same page do not collide. Falls back to a slug of the title for URLs with
// no usable path.
//
// Example: https://firebase.google.com/docs/ai-logic/get-started?api=vertex
// with languages [swift web] becomes ai-logic-get-started-api-vertex-swift-web.md.
func Filename(rawURL string, title string, langs []tabdoc.Language) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", tabdoc.Errorf(tabdoc.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	var parts []string
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	// Everything before and including the "docs" segment is site chrome,
	// not page identity.
	for i, part := range parts {
		if part == "docs" {
			parts = parts[i+1:]
			break
		}
	}

	base := strings.Join(parts, "-")
	if base == "" {
		base = strings.ToLower(title)
	}
	base = unsafeChars.ReplaceAllString(base, "")
	base = strings.Trim(dashRuns.ReplaceAllString(base, "-"), "-")
	if base == "" {
		base = "index"
	}

	if u.RawQuery != "" {
		query := u.Query()
		keys := make([]string, 0, len(query))
		for key := range query {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if values := query[key]; len(values) > 0 {
				base += "-" + key + "-" + values[0]
			}
		}
		base = unsafeChars.ReplaceAllString(base, "")
		base = strings.Trim(dashRuns.ReplaceAllString(base, "-"), "-")
	}

	for _, lang := range langs {
		base += "-" + string(lang)
	}

	return base + ".md", nil
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *tabdoc.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	if len(doc.Languages) > 0 {
		names := make([]string, 0, len(doc.Languages))
		for _, lang := range doc.Languages {
			names = append(names, string(lang))
		}
		b.WriteString("\nlanguages: ")
		b.WriteString(strings.Join(names, ", "))
	}
	b.WriteString("\nextracted: ")
	b.WriteString(doc.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements tabdoc.DocumentWriter at compile time.
var _ tabdoc.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
// The directory is created on first write if it does not exist.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk and returns the path written.
func (w *Writer) WriteDocument(ctx context.Context, doc *tabdoc.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	name, err := Filename(doc.SourceURL, doc.Title, doc.Languages)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}
