package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logia-admin/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

const (
	dueColumns     = `id, member_id, amount, due_date, status, paid_at`
	insertDueQuery = `
INSERT INTO dues(id, member_id, amount, due_date, status)
VALUES ($1, $2, $3, $4, 'pendiente')
RETURNING ` + dueColumns
	listDuesQuery = `SELECT ` + dueColumns + `
FROM dues
WHERE ($1 = '' OR status = $1) AND ($2 = '' OR member_id::text = $2)
ORDER BY due_date DESC, id
LIMIT $3 OFFSET $4`
	selectDueForUpdateQuery = `SELECT status FROM dues WHERE id=$1 FOR UPDATE`
	payDueQuery             = `
UPDATE dues SET status='pagada', paid_at=$2
WHERE id=$1
RETURNING ` + dueColumns

	transactionColumns     = `id, kind, concept, amount, tx_date, category`
	insertTransactionQuery = `
INSERT INTO transactions(id, kind, concept, amount, tx_date, category)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + transactionColumns
	listTransactionsQuery = `SELECT ` + transactionColumns + `
FROM transactions
WHERE ($1 = '' OR kind = $1) AND ($2 = '' OR category = $2)
ORDER BY tx_date DESC, id
LIMIT $3 OFFSET $4`

	ledgerSummaryQuery = `
SELECT
    COALESCE(SUM(amount) FILTER (WHERE kind = 'ingreso'), 0),
    COALESCE(SUM(amount) FILTER (WHERE kind = 'egreso'), 0)
FROM transactions`
	duesSummaryQuery = `
SELECT
    COUNT(*) FILTER (WHERE status = 'pendiente'),
    COALESCE(SUM(amount) FILTER (WHERE status = 'pendiente'), 0),
    COUNT(*) FILTER (WHERE status = 'pagada'),
    COALESCE(SUM(amount) FILTER (WHERE status = 'pagada'), 0)
FROM dues`
)

// CreateDue inserts a pending due for an existing member.
func (p *Postgres) CreateDue(ctx context.Context, d entities.Due) (*entities.Due, error) {
	d.ID = uuid.NewString()

	created, err := scanDue(p.db.QueryRow(ctx, insertDueQuery, d.ID, d.MemberID, d.Amount, d.Date))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, entities.ErrMemberNotFound
		}
		p.log.Errorw("failed to create due", "error", err, "member_id", d.MemberID)
		return nil, fmt.Errorf("insert due: %w", err)
	}

	p.log.Infow("due created", "due_id", created.ID, "member_id", created.MemberID)
	return created, nil
}

// ListDues returns dues newest first.
func (p *Postgres) ListDues(ctx context.Context, filter entities.DueFilter) ([]entities.Due, error) {
	limit, offset := pageArgs(filter.Page.Limit, filter.Page.Offset)
	rows, err := p.db.Query(ctx, listDuesQuery, string(filter.Status), filter.MemberID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list dues: %w", err)
	}
	defer rows.Close()

	dues := make([]entities.Due, 0)
	for rows.Next() {
		d, err := scanDue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan due: %w", err)
		}
		dues = append(dues, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dues: %w", err)
	}

	return dues, nil
}

// PayDue marks a pending due as paid today. The row lock serializes concurrent payments.
func (p *Postgres) PayDue(ctx context.Context, id string) (*entities.Due, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status entities.DueStatus
	if err := tx.QueryRow(ctx, selectDueForUpdateQuery, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDueNotFound
		}
		return nil, fmt.Errorf("lock due: %w", err)
	}
	if status == entities.DuePaid {
		return nil, entities.ErrDueAlreadyPaid
	}

	paid, err := scanDue(tx.QueryRow(ctx, payDueQuery, id, time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("pay due: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("due paid", "due_id", id, "member_id", paid.MemberID)
	return paid, nil
}

// CreateTransaction inserts a ledger entry.
func (p *Postgres) CreateTransaction(ctx context.Context, t entities.Transaction) (*entities.Transaction, error) {
	t.ID = uuid.NewString()

	created, err := scanTransaction(p.db.QueryRow(ctx, insertTransactionQuery,
		t.ID, t.Kind, t.Concept, t.Amount, t.Date, t.Category))
	if err != nil {
		p.log.Errorw("failed to create transaction", "error", err)
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	p.log.Infow("transaction created", "transaction_id", created.ID, "kind", created.Kind)
	return created, nil
}

// ListTransactions returns ledger entries newest first.
func (p *Postgres) ListTransactions(ctx context.Context, filter entities.TransactionFilter) ([]entities.Transaction, error) {
	limit, offset := pageArgs(filter.Page.Limit, filter.Page.Offset)
	rows, err := p.db.Query(ctx, listTransactionsQuery, string(filter.Kind), filter.Category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]entities.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}

// TreasurySummary aggregates ledger totals and due counters.
func (p *Postgres) TreasurySummary(ctx context.Context) (entities.TreasurySummary, error) {
	var s entities.TreasurySummary
	if err := p.db.QueryRow(ctx, ledgerSummaryQuery).Scan(&s.Income, &s.Expenses); err != nil {
		return s, fmt.Errorf("ledger summary: %w", err)
	}
	if err := p.db.QueryRow(ctx, duesSummaryQuery).Scan(
		&s.PendingDues, &s.PendingAmount, &s.CollectedDues, &s.CollectedTotal,
	); err != nil {
		return s, fmt.Errorf("dues summary: %w", err)
	}
	s.Balance = s.Income - s.Expenses
	return s, nil
}

func scanDue(row pgx.Row) (*entities.Due, error) {
	var d entities.Due
	if err := row.Scan(&d.ID, &d.MemberID, &d.Amount, &d.Date, &d.Status, &d.PaidAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func scanTransaction(row pgx.Row) (*entities.Transaction, error) {
	var t entities.Transaction
	if err := row.Scan(&t.ID, &t.Kind, &t.Concept, &t.Amount, &t.Date, &t.Category); err != nil {
		return nil, err
	}
	return &t, nil
}
