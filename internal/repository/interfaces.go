// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"logia-admin/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes dashboard account operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	GetUserByID(ctx context.Context, id string) (*entities.User, error)
}

// MemberInterface exposes member directory operations.
type MemberInterface interface {
	CreateMember(ctx context.Context, m entities.Member) (*entities.Member, error)
	GetMember(ctx context.Context, id string) (*entities.Member, error)
	ListMembers(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error)
}

// DocumentInterface exposes library operations.
type DocumentInterface interface {
	CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error)
	GetDocument(ctx context.Context, id string) (*entities.Document, error)
	ListDocuments(ctx context.Context, filter entities.DocumentFilter) ([]entities.Document, error)
}

// TreasuryInterface exposes dues and ledger operations.
type TreasuryInterface interface {
	CreateDue(ctx context.Context, d entities.Due) (*entities.Due, error)
	ListDues(ctx context.Context, filter entities.DueFilter) ([]entities.Due, error)
	PayDue(ctx context.Context, id string) (*entities.Due, error)
	CreateTransaction(ctx context.Context, tx entities.Transaction) (*entities.Transaction, error)
	ListTransactions(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error)
	TreasurySummary(ctx context.Context) (entities.TreasurySummary, error)
}

// AnnouncementInterface exposes announcement operations.
type AnnouncementInterface interface {
	CreateAnnouncement(ctx context.Context, a entities.Announcement) (*entities.Announcement, error)
	ListAnnouncements(ctx context.Context, filter entities.AnnouncementFilter) ([]entities.Announcement, error)
}

// RitualInterface exposes ritual scheduling operations.
type RitualInterface interface {
	CreateRitual(ctx context.Context, r entities.Ritual) (*entities.Ritual, error)
	ListRituals(ctx context.Context, filter entities.RitualFilter) ([]entities.Ritual, error)
}

// BookInterface exposes book catalog operations.
type BookInterface interface {
	CreateBook(ctx context.Context, b entities.Book) (*entities.Book, error)
	ListBooks(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error)
}
