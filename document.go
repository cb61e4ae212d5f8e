package tabdoc

import (
	"context"
	"time"
)

// Document represents one completed extraction run: a documentation page
// fetched, filtered, and converted to markdown.
type Document struct {
	ID          string     `json:"id"`
	SourceURL   string     `json:"sourceUrl"`
	FilePath    string     `json:"filePath"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ContentHash string     `json:"contentHash"`
	Languages   []Language `json:"languages"`
	FetchedAt   time.Time  `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	for _, lang := range d.Languages {
		if !lang.Valid() {
			return Errorf(EINVALID, "unsupported language %q", lang)
		}
	}
	return nil
}

// DocumentWriter writes documents to their final destination.
type DocumentWriter interface {
	// WriteDocument persists the document's markdown content and returns
	// the path it was written to.
	WriteDocument(ctx context.Context, doc *Document) (string, error)
}

// DocumentService records and retrieves past extraction runs.
type DocumentService interface {
	// CreateDocument records a new extraction run. The implementation
	// assigns ID, ContentHash, and FetchedAt.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, most recently
	// fetched first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document record.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
