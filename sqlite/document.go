package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tabdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tabdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements tabdoc.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// HashContent computes xxHash of content and returns a hex string. The same
// hash is stored with each run so an unchanged page can be recognized.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateDocument records an extraction run, assigning ID, ContentHash and
// FetchedAt.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *tabdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.FetchedAt = time.Now().UTC()
	doc.ContentHash = HashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, file_path, title, content, content_hash, languages, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.FilePath, doc.Title, doc.Content, doc.ContentHash,
		joinLanguages(doc.Languages), doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*tabdoc.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, file_path, title, content, content_hash, languages, fetched_at
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, tabdoc.Errorf(tabdoc.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, most recently
// fetched first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter tabdoc.DocumentFilter) ([]*tabdoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, file_path, title, content, content_hash, languages, fetched_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*tabdoc.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// DeleteDocument permanently removes a document record.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return tabdoc.Errorf(tabdoc.ENOTFOUND, "document not found")
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*tabdoc.Document, error) {
	var doc tabdoc.Document
	var languages, fetchedAt string

	if err := s.Scan(&doc.ID, &doc.SourceURL, &doc.FilePath, &doc.Title,
		&doc.Content, &doc.ContentHash, &languages, &fetchedAt); err != nil {
		return nil, err
	}

	doc.Languages = splitLanguages(languages)

	var err error
	doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

func joinLanguages(langs []tabdoc.Language) string {
	names := make([]string, 0, len(langs))
	for _, lang := range langs {
		names = append(names, string(lang))
	}
	return strings.Join(names, ",")
}

func splitLanguages(s string) []tabdoc.Language {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	langs := make([]tabdoc.Language, 0, len(parts))
	for _, part := range parts {
		langs = append(langs, tabdoc.Language(part))
	}
	return langs
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
