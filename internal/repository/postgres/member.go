package postgres

import (
	"context"
	"errors"
	"fmt"

	"logia-admin/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	memberColumns     = `id, name, degree, office, status, COALESCE(email, ''), phone, initiation_date`
	insertMemberQuery = `
INSERT INTO members(id, name, degree, office, status, email, phone, initiation_date)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
RETURNING ` + memberColumns
	selectMemberQuery = `SELECT ` + memberColumns + ` FROM members WHERE id=$1`
	listMembersQuery  = `SELECT ` + memberColumns + `
FROM members
WHERE ($1 = '' OR status = $1) AND ($2 = '' OR degree = $2)
ORDER BY name, id
LIMIT $3 OFFSET $4`
)

// CreateMember inserts a member into the directory.
func (p *Postgres) CreateMember(ctx context.Context, m entities.Member) (*entities.Member, error) {
	m.ID = uuid.NewString()

	created, err := scanMember(p.db.QueryRow(ctx, insertMemberQuery,
		m.ID, m.Name, m.Degree, m.Office, m.Status, m.Email, m.Phone, m.InitiationDate))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrMemberExists
		}
		p.log.Errorw("failed to create member", "error", err)
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member created", "member_id", created.ID)
	return created, nil
}

// GetMember fetches a member by id.
func (p *Postgres) GetMember(ctx context.Context, id string) (*entities.Member, error) {
	m, err := scanMember(p.db.QueryRow(ctx, selectMemberQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// ListMembers returns members matching the filter ordered by name.
func (p *Postgres) ListMembers(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error) {
	limit, offset := pageArgs(filter.Page.Limit, filter.Page.Offset)
	rows, err := p.db.Query(ctx, listMembersQuery, string(filter.Status), filter.Degree, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

func scanMember(row pgx.Row) (*entities.Member, error) {
	var m entities.Member
	if err := row.Scan(&m.ID, &m.Name, &m.Degree, &m.Office, &m.Status, &m.Email, &m.Phone, &m.InitiationDate); err != nil {
		return nil, err
	}
	return &m, nil
}
