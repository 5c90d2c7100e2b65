package postgres

import (
	"context"
	"fmt"

	"logia-admin/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	ritualColumns     = `id, title, kind, ritual_date, ritual_time, place, degree, description`
	insertRitualQuery = `
INSERT INTO rituals(id, title, kind, ritual_date, ritual_time, place, degree, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + ritualColumns
	listRitualsQuery = `SELECT ` + ritualColumns + `
FROM rituals
WHERE ($1 = '' OR kind = $1)
  AND ($2 = '' OR degree = $2)
  AND ($3::date IS NULL OR ritual_date >= $3::date)
ORDER BY ritual_date, ritual_time, id
LIMIT $4 OFFSET $5`
)

// CreateRitual schedules a ritual.
func (p *Postgres) CreateRitual(ctx context.Context, r entities.Ritual) (*entities.Ritual, error) {
	r.ID = uuid.NewString()

	created, err := scanRitual(p.db.QueryRow(ctx, insertRitualQuery,
		r.ID, r.Title, r.Kind, r.Date, r.Time, r.Place, r.Degree, r.Description))
	if err != nil {
		p.log.Errorw("failed to create ritual", "error", err)
		return nil, fmt.Errorf("insert ritual: %w", err)
	}

	p.log.Infow("ritual created", "ritual_id", created.ID, "date", created.Date)
	return created, nil
}

// ListRituals returns rituals in calendar order.
func (p *Postgres) ListRituals(ctx context.Context, filter entities.RitualFilter) ([]entities.Ritual, error) {
	limit, offset := pageArgs(filter.Page.Limit, filter.Page.Offset)
	rows, err := p.db.Query(ctx, listRitualsQuery, filter.Kind, filter.Degree, filter.From, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rituals: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Ritual, 0)
	for rows.Next() {
		r, err := scanRitual(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ritual: %w", err)
		}
		res = append(res, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rituals: %w", err)
	}

	return res, nil
}

func scanRitual(row pgx.Row) (*entities.Ritual, error) {
	var r entities.Ritual
	if err := row.Scan(&r.ID, &r.Title, &r.Kind, &r.Date, &r.Time, &r.Place, &r.Degree, &r.Description); err != nil {
		return nil, err
	}
	return &r, nil
}
