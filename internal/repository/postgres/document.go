package postgres

import (
	"context"
	"errors"
	"fmt"

	"logia-admin/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	documentColumns     = `id, title, category, degree, doc_date, author, description`
	insertDocumentQuery = `
INSERT INTO documents(id, title, category, degree, doc_date, author, description)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + documentColumns
	selectDocumentQuery = `SELECT ` + documentColumns + ` FROM documents WHERE id=$1`
	listDocumentsQuery  = `SELECT ` + documentColumns + `
FROM documents
WHERE ($1 = '' OR category = $1) AND ($2 = '' OR degree = $2)
ORDER BY doc_date DESC, id
LIMIT $3 OFFSET $4`
)

// CreateDocument inserts a library document.
func (p *Postgres) CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	d.ID = uuid.NewString()

	created, err := scanDocument(p.db.QueryRow(ctx, insertDocumentQuery,
		d.ID, d.Title, d.Category, d.Degree, d.Date, d.Author, d.Description))
	if err != nil {
		p.log.Errorw("failed to create document", "error", err)
		return nil, fmt.Errorf("insert document: %w", err)
	}

	p.log.Infow("document created", "document_id", created.ID, "category", created.Category)
	return created, nil
}

// GetDocument fetches a document by id.
func (p *Postgres) GetDocument(ctx context.Context, id string) (*entities.Document, error) {
	d, err := scanDocument(p.db.QueryRow(ctx, selectDocumentQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// ListDocuments returns documents newest first.
func (p *Postgres) ListDocuments(ctx context.Context, filter entities.DocumentFilter) ([]entities.Document, error) {
	limit, offset := pageArgs(filter.Page.Limit, filter.Page.Offset)
	rows, err := p.db.Query(ctx, listDocumentsQuery, filter.Category, filter.Degree, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]entities.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, nil
}

func scanDocument(row pgx.Row) (*entities.Document, error) {
	var d entities.Document
	if err := row.Scan(&d.ID, &d.Title, &d.Category, &d.Degree, &d.Date, &d.Author, &d.Description); err != nil {
		return nil, err
	}
	return &d, nil
}
