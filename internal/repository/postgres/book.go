package postgres

import (
	"context"
	"fmt"

	"logia-admin/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	bookColumns     = `id, title, author, category, degree, pub_year, available`
	insertBookQuery = `
INSERT INTO books(id, title, author, category, degree, pub_year, available)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + bookColumns
	listBooksQuery = `SELECT ` + bookColumns + `
FROM books
WHERE ($1 = '' OR category = $1) AND ($2 = '' OR degree = $2)
ORDER BY title, id
LIMIT $3 OFFSET $4`
)

// CreateBook adds a book to the catalog.
func (p *Postgres) CreateBook(ctx context.Context, b entities.Book) (*entities.Book, error) {
	b.ID = uuid.NewString()

	created, err := scanBook(p.db.QueryRow(ctx, insertBookQuery,
		b.ID, b.Title, b.Author, b.Category, b.Degree, b.Year, b.Available))
	if err != nil {
		p.log.Errorw("failed to create book", "error", err)
		return nil, fmt.Errorf("insert book: %w", err)
	}

	p.log.Infow("book created", "book_id", created.ID)
	return created, nil
}

// ListBooks returns catalog entries by title.
func (p *Postgres) ListBooks(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error) {
	limit, offset := pageArgs(filter.Page.Limit, filter.Page.Offset)
	rows, err := p.db.Query(ctx, listBooksQuery, filter.Category, filter.Degree, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		res = append(res, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	return res, nil
}

func scanBook(row pgx.Row) (*entities.Book, error) {
	var b entities.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.Degree, &b.Year, &b.Available); err != nil {
		return nil, err
	}
	return &b, nil
}
