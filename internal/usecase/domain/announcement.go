// Package domain contains application Usecases orchestrating domain logic by announcement.
package domain

import (
	"context"
	"fmt"
	"strings"

	"logia-admin/internal/entities"
)

// CreateAnnouncement validates and stores an announcement. Priority defaults to normal.
func (u *Usecase) CreateAnnouncement(ctx context.Context, a entities.Announcement) (*entities.Announcement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	a.Title = strings.TrimSpace(a.Title)
	a.Content = strings.TrimSpace(a.Content)
	if a.Title == "" || a.Content == "" {
		return nil, fmt.Errorf("%w: titulo and contenido are required", entities.ErrInvalidArgument)
	}
	if a.Priority == "" {
		a.Priority = entities.PriorityNormal
	}
	switch a.Priority {
	case entities.PriorityLow, entities.PriorityNormal, entities.PriorityHigh:
	default:
		return nil, fmt.Errorf("%w: unknown prioridad %q", entities.ErrInvalidArgument, a.Priority)
	}
	if a.Date.IsZero() {
		a.Date = today()
	}

	return u.repo.CreateAnnouncement(ctx, a)
}

// Announcements lists announcements filtered by priority.
func (u *Usecase) Announcements(ctx context.Context, filter entities.AnnouncementFilter) ([]entities.Announcement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	page, err := normalizePage(filter.Page)
	if err != nil {
		return nil, err
	}
	filter.Page = page
	return u.repo.ListAnnouncements(ctx, filter)
}
