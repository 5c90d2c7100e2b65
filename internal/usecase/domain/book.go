// Package domain contains application Usecases orchestrating domain logic by book.
package domain

import (
	"context"
	"fmt"
	"math"
	"strings"

	"logia-admin/internal/entities"
)

// CreateBook validates and catalogs a book.
func (u *Usecase) CreateBook(ctx context.Context, b entities.Book) (*entities.Book, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	if b.Title == "" || b.Author == "" {
		return nil, fmt.Errorf("%w: titulo and autor are required", entities.ErrInvalidArgument)
	}
	if b.Year < 0 || b.Year > math.MaxInt32 {
		return nil, fmt.Errorf("%w: anio out of range", entities.ErrInvalidArgument)
	}

	return u.repo.CreateBook(ctx, b)
}

// Books lists catalog entries filtered by category and degree.
func (u *Usecase) Books(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	page, err := normalizePage(filter.Page)
	if err != nil {
		return nil, err
	}
	filter.Page = page
	return u.repo.ListBooks(ctx, filter)
}
