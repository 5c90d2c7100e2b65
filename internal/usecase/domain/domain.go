package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"logia-admin/internal/entities"
	"logia-admin/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Generate(user entities.User) (string, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	hasher  PasswordHasher
	tokens  TokenIssuer

	dummyOnce sync.Once
	dummy     string
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	hasher PasswordHasher,
	tokens TokenIssuer,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log.Named("usecase"),
		repo:    repo,
		timeout: timeout,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// normalizePage applies the default limit and caps oversized pages.
func normalizePage(p entities.Page) (entities.Page, error) {
	if p.Limit < 0 || p.Offset < 0 {
		return p, fmt.Errorf("%w: limit and offset must not be negative", entities.ErrInvalidArgument)
	}
	if p.Limit == 0 {
		p.Limit = entities.DefaultLimit
	}
	if p.Limit > entities.MaxLimit {
		p.Limit = entities.MaxLimit
	}
	return p, nil
}

// validID reports whether id can address a stored row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// today returns the current UTC date truncated to midnight.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
