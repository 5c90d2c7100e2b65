// Package domain contains application Usecases orchestrating domain logic by ritual.
package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"logia-admin/internal/entities"
)

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// CreateRitual validates and schedules a ritual.
func (u *Usecase) CreateRitual(ctx context.Context, r entities.Ritual) (*entities.Ritual, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" || r.Date.IsZero() {
		return nil, fmt.Errorf("%w: titulo and fecha are required", entities.ErrInvalidArgument)
	}
	if r.Time != "" && !clockRe.MatchString(r.Time) {
		return nil, fmt.Errorf("%w: hora must be HH:MM", entities.ErrInvalidArgument)
	}

	return u.repo.CreateRitual(ctx, r)
}

// Rituals lists rituals in calendar order.
func (u *Usecase) Rituals(ctx context.Context, filter entities.RitualFilter) ([]entities.Ritual, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	page, err := normalizePage(filter.Page)
	if err != nil {
		return nil, err
	}
	filter.Page = page
	return u.repo.ListRituals(ctx, filter)
}
