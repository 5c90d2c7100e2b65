package usecase

import (
	"context"
	"time"

	"logia-admin/internal/repository"
	"logia-admin/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	MemberUsecaseInterface
	DocumentUsecaseInterface
	TreasuryUsecaseInterface
	AnnouncementUsecaseInterface
	RitualUsecaseInterface
	BookUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, hasher, tokens)
}
