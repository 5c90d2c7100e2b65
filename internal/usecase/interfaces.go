package usecase

import (
	"context"

	"logia-admin/internal/entities"
)

// AuthUsecaseInterface abstracts login and account operations.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, username, password string) (*entities.Session, error)
	CurrentUser(ctx context.Context, userID string) (*entities.User, error)
	EnsureAdmin(ctx context.Context, username, password, name string) (bool, error)
	CreateUser(ctx context.Context, username, password string, role entities.Role, name string) (*entities.User, error)
}

// MemberUsecaseInterface abstracts member directory operations.
type MemberUsecaseInterface interface {
	CreateMember(ctx context.Context, m entities.Member) (*entities.Member, error)
	Member(ctx context.Context, id string) (*entities.Member, error)
	Members(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error)
}

// DocumentUsecaseInterface abstracts library operations.
type DocumentUsecaseInterface interface {
	CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error)
	Document(ctx context.Context, id string) (*entities.Document, error)
	Documents(ctx context.Context, filter entities.DocumentFilter) ([]entities.Document, error)
}

// TreasuryUsecaseInterface abstracts dues and ledger operations.
type TreasuryUsecaseInterface interface {
	CreateDue(ctx context.Context, d entities.Due) (*entities.Due, error)
	Dues(ctx context.Context, filter entities.DueFilter) ([]entities.Due, error)
	PayDue(ctx context.Context, dueID string) (*entities.Due, error)
	CreateTransaction(ctx context.Context, t entities.Transaction) (*entities.Transaction, error)
	Transactions(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error)
	TreasurySummary(ctx context.Context) (entities.TreasurySummary, error)
}

// AnnouncementUsecaseInterface abstracts announcement operations.
type AnnouncementUsecaseInterface interface {
	CreateAnnouncement(ctx context.Context, a entities.Announcement) (*entities.Announcement, error)
	Announcements(ctx context.Context, filter entities.AnnouncementFilter) ([]entities.Announcement, error)
}

// RitualUsecaseInterface abstracts ritual scheduling.
type RitualUsecaseInterface interface {
	CreateRitual(ctx context.Context, r entities.Ritual) (*entities.Ritual, error)
	Rituals(ctx context.Context, filter entities.RitualFilter) ([]entities.Ritual, error)
}

// BookUsecaseInterface abstracts book catalog operations.
type BookUsecaseInterface interface {
	CreateBook(ctx context.Context, b entities.Book) (*entities.Book, error)
	Books(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error)
}
