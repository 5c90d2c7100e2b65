// Package domain contains application Usecases orchestrating domain logic by treasury.
package domain

import (
	"context"
	"fmt"
	"strings"

	"logia-admin/internal/entities"
)

// Amounts are stored as NUMERIC(12, 2).
const (
	minAmount = 0.01
	maxAmount = 1e10
)

// CreateDue registers a pending due for a member.
func (u *Usecase) CreateDue(ctx context.Context, d entities.Due) (*entities.Due, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if d.MemberID == "" {
		return nil, fmt.Errorf("%w: miembroId is required", entities.ErrInvalidArgument)
	}
	if !validID(d.MemberID) {
		return nil, entities.ErrMemberNotFound
	}
	if err := validAmount(d.Amount); err != nil {
		return nil, err
	}
	if d.Date.IsZero() {
		d.Date = today()
	}

	return u.repo.CreateDue(ctx, d)
}

// Dues lists dues filtered by status and member.
func (u *Usecase) Dues(ctx context.Context, filter entities.DueFilter) ([]entities.Due, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Status != "" && filter.Status != entities.DuePending && filter.Status != entities.DuePaid {
		return nil, fmt.Errorf("%w: unknown estado %q", entities.ErrInvalidArgument, filter.Status)
	}
	if filter.MemberID != "" && !validID(filter.MemberID) {
		return []entities.Due{}, nil
	}
	page, err := normalizePage(filter.Page)
	if err != nil {
		return nil, err
	}
	filter.Page = page
	return u.repo.ListDues(ctx, filter)
}

// PayDue marks a pending due as paid.
func (u *Usecase) PayDue(ctx context.Context, dueID string) (*entities.Due, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if dueID == "" {
		return nil, fmt.Errorf("%w: cuotaId is required", entities.ErrInvalidArgument)
	}
	if !validID(dueID) {
		return nil, entities.ErrDueNotFound
	}

	due, err := u.repo.PayDue(ctx, dueID)
	if err != nil {
		return nil, err
	}
	u.log.Infow("due paid", "due_id", due.ID, "member_id", due.MemberID)
	return due, nil
}

// CreateTransaction validates and stores a ledger entry.
func (u *Usecase) CreateTransaction(ctx context.Context, t entities.Transaction) (*entities.Transaction, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	t.Concept = strings.TrimSpace(t.Concept)
	if t.Kind != entities.TransactionIncome && t.Kind != entities.TransactionExpense {
		return nil, fmt.Errorf("%w: tipo must be ingreso or egreso", entities.ErrInvalidArgument)
	}
	if t.Concept == "" {
		return nil, fmt.Errorf("%w: concepto is required", entities.ErrInvalidArgument)
	}
	if err := validAmount(t.Amount); err != nil {
		return nil, err
	}
	if t.Date.IsZero() {
		t.Date = today()
	}

	return u.repo.CreateTransaction(ctx, t)
}

// Transactions lists ledger entries filtered by kind and category.
func (u *Usecase) Transactions(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	page, err := normalizePage(filter.Page)
	if err != nil {
		return nil, err
	}
	filter.Page = page
	return u.repo.ListTransactions(ctx, filter)
}

// TreasurySummary returns ledger and dues totals.
func (u *Usecase) TreasurySummary(ctx context.Context) (entities.TreasurySummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.TreasurySummary(ctx)
}

func validAmount(amount float64) error {
	if amount < minAmount || amount >= maxAmount {
		return fmt.Errorf("%w: monto must be between 0.01 and 9999999999.99", entities.ErrInvalidArgument)
	}
	return nil
}
