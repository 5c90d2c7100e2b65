package domain

import (
	"context"

	"logia-admin/internal/entities"
	"logia-admin/internal/repository"

	"github.com/stretchr/testify/mock"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateMember(ctx context.Context, mem entities.Member) (*entities.Member, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *repoMock) GetMember(ctx context.Context, id string) (*entities.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *repoMock) ListMembers(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Member), args.Error(1)
}

func (m *repoMock) CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Document), args.Error(1)
}

func (m *repoMock) GetDocument(ctx context.Context, id string) (*entities.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Document), args.Error(1)
}

func (m *repoMock) ListDocuments(ctx context.Context, filter entities.DocumentFilter) ([]entities.Document, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Document), args.Error(1)
}

func (m *repoMock) CreateDue(ctx context.Context, d entities.Due) (*entities.Due, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Due), args.Error(1)
}

func (m *repoMock) ListDues(ctx context.Context, filter entities.DueFilter) ([]entities.Due, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Due), args.Error(1)
}

func (m *repoMock) PayDue(ctx context.Context, id string) (*entities.Due, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Due), args.Error(1)
}

func (m *repoMock) CreateTransaction(ctx context.Context, t entities.Transaction) (*entities.Transaction, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *repoMock) ListTransactions(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Transaction), args.Error(1)
}

func (m *repoMock) TreasurySummary(ctx context.Context) (entities.TreasurySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.TreasurySummary{}, args.Error(1)
	}
	return args.Get(0).(entities.TreasurySummary), args.Error(1)
}

func (m *repoMock) CreateAnnouncement(ctx context.Context, a entities.Announcement) (*entities.Announcement, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Announcement), args.Error(1)
}

func (m *repoMock) ListAnnouncements(ctx context.Context, filter entities.AnnouncementFilter) ([]entities.Announcement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Announcement), args.Error(1)
}

func (m *repoMock) CreateRitual(ctx context.Context, r entities.Ritual) (*entities.Ritual, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ritual), args.Error(1)
}

func (m *repoMock) ListRituals(ctx context.Context, filter entities.RitualFilter) ([]entities.Ritual, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Ritual), args.Error(1)
}

func (m *repoMock) CreateBook(ctx context.Context, b entities.Book) (*entities.Book, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *repoMock) ListBooks(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Book), args.Error(1)
}
