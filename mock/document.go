package mock

import (
	"context"

	"github.com/fwojciec/tabdoc"
)

var _ tabdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of tabdoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *tabdoc.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*tabdoc.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter tabdoc.DocumentFilter) ([]*tabdoc.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *tabdoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*tabdoc.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter tabdoc.DocumentFilter) ([]*tabdoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

var _ tabdoc.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of tabdoc.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *tabdoc.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *tabdoc.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}
