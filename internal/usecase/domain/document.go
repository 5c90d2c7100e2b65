// Package domain contains application Usecases orchestrating domain logic by library document.
package domain

import (
	"context"
	"fmt"
	"strings"

	"logia-admin/internal/entities"
)

// CreateDocument validates and stores a library document. Date defaults to today.
func (u *Usecase) CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	d.Title = strings.TrimSpace(d.Title)
	d.Category = strings.TrimSpace(d.Category)
	d.Degree = strings.TrimSpace(d.Degree)
	if d.Title == "" || d.Category == "" || d.Degree == "" {
		return nil, fmt.Errorf("%w: titulo, categoria and grado are required", entities.ErrInvalidArgument)
	}
	if d.Date.IsZero() {
		d.Date = today()
	}

	return u.repo.CreateDocument(ctx, d)
}

// Document returns a document by id.
func (u *Usecase) Document(ctx context.Context, id string) (*entities.Document, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !validID(id) {
		return nil, entities.ErrDocumentNotFound
	}
	return u.repo.GetDocument(ctx, id)
}

// Documents lists documents filtered by category and degree.
func (u *Usecase) Documents(ctx context.Context, filter entities.DocumentFilter) ([]entities.Document, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	page, err := normalizePage(filter.Page)
	if err != nil {
		return nil, err
	}
	filter.Page = page
	return u.repo.ListDocuments(ctx, filter)
}
