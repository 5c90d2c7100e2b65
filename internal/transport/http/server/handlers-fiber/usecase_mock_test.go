package handlers_fiber

import (
	"context"

	"logia-admin/internal/entities"
	"logia-admin/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type usecaseMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *usecaseMock) CurrentUser(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *usecaseMock) EnsureAdmin(ctx context.Context, username, password, name string) (bool, error) {
	args := m.Called(ctx, username, password, name)
	return args.Bool(0), args.Error(1)
}

func (m *usecaseMock) CreateUser(ctx context.Context, username, password string, role entities.Role, name string) (*entities.User, error) {
	args := m.Called(ctx, username, password, role, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *usecaseMock) CreateMember(ctx context.Context, mem entities.Member) (*entities.Member, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *usecaseMock) Member(ctx context.Context, id string) (*entities.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *usecaseMock) Members(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Member), args.Error(1)
}

func (m *usecaseMock) CreateDocument(ctx context.Context, d entities.Document) (*entities.Document, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Document), args.Error(1)
}

func (m *usecaseMock) Document(ctx context.Context, id string) (*entities.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Document), args.Error(1)
}

func (m *usecaseMock) Documents(ctx context.Context, filter entities.DocumentFilter) ([]entities.Document, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Document), args.Error(1)
}

func (m *usecaseMock) CreateDue(ctx context.Context, d entities.Due) (*entities.Due, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Due), args.Error(1)
}

func (m *usecaseMock) Dues(ctx context.Context, filter entities.DueFilter) ([]entities.Due, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Due), args.Error(1)
}

func (m *usecaseMock) PayDue(ctx context.Context, dueID string) (*entities.Due, error) {
	args := m.Called(ctx, dueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Due), args.Error(1)
}

func (m *usecaseMock) CreateTransaction(ctx context.Context, t entities.Transaction) (*entities.Transaction, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *usecaseMock) Transactions(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Transaction), args.Error(1)
}

func (m *usecaseMock) TreasurySummary(ctx context.Context) (entities.TreasurySummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.TreasurySummary), args.Error(1)
}

func (m *usecaseMock) CreateAnnouncement(ctx context.Context, a entities.Announcement) (*entities.Announcement, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Announcement), args.Error(1)
}

func (m *usecaseMock) Announcements(ctx context.Context, filter entities.AnnouncementFilter) ([]entities.Announcement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Announcement), args.Error(1)
}

func (m *usecaseMock) CreateRitual(ctx context.Context, r entities.Ritual) (*entities.Ritual, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ritual), args.Error(1)
}

func (m *usecaseMock) Rituals(ctx context.Context, filter entities.RitualFilter) ([]entities.Ritual, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Ritual), args.Error(1)
}

func (m *usecaseMock) CreateBook(ctx context.Context, b entities.Book) (*entities.Book, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *usecaseMock) Books(ctx context.Context, filter entities.BookFilter) ([]entities.Book, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Book), args.Error(1)
}
