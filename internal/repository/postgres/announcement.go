package postgres

import (
	"context"
	"fmt"

	"logia-admin/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	announcementColumns     = `id, title, content, ann_date, author, priority`
	insertAnnouncementQuery = `
INSERT INTO announcements(id, title, content, ann_date, author, priority)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + announcementColumns
	listAnnouncementsQuery = `SELECT ` + announcementColumns + `
FROM announcements
WHERE ($1 = '' OR priority = $1)
ORDER BY ann_date DESC, id
LIMIT $2 OFFSET $3`
)

// CreateAnnouncement inserts a dashboard announcement.
func (p *Postgres) CreateAnnouncement(ctx context.Context, a entities.Announcement) (*entities.Announcement, error) {
	a.ID = uuid.NewString()

	created, err := scanAnnouncement(p.db.QueryRow(ctx, insertAnnouncementQuery,
		a.ID, a.Title, a.Content, a.Date, a.Author, a.Priority))
	if err != nil {
		p.log.Errorw("failed to create announcement", "error", err)
		return nil, fmt.Errorf("insert announcement: %w", err)
	}

	p.log.Infow("announcement created", "announcement_id", created.ID)
	return created, nil
}

// ListAnnouncements returns announcements newest first.
func (p *Postgres) ListAnnouncements(ctx context.Context, filter entities.AnnouncementFilter) ([]entities.Announcement, error) {
	limit, offset := pageArgs(filter.Page.Limit, filter.Page.Offset)
	rows, err := p.db.Query(ctx, listAnnouncementsQuery, string(filter.Priority), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		res = append(res, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate announcements: %w", err)
	}

	return res, nil
}

func scanAnnouncement(row pgx.Row) (*entities.Announcement, error) {
	var a entities.Announcement
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.Author, &a.Priority); err != nil {
		return nil, err
	}
	return &a, nil
}
