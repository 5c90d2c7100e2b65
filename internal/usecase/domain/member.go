// Package domain contains application Usecases orchestrating domain logic by member.
package domain

import (
	"context"
	"fmt"
	"strings"

	"logia-admin/internal/entities"
)

// CreateMember validates and stores a new member. Status defaults to active.
func (u *Usecase) CreateMember(ctx context.Context, m entities.Member) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	m.Name = strings.TrimSpace(m.Name)
	m.Degree = strings.TrimSpace(m.Degree)
	m.Email = strings.TrimSpace(m.Email)
	if m.Name == "" || m.Degree == "" {
		return nil, fmt.Errorf("%w: nombre and grado are required", entities.ErrInvalidArgument)
	}
	if m.Status == "" {
		m.Status = entities.MemberActive
	}
	if !validMemberStatus(m.Status) {
		return nil, fmt.Errorf("%w: unknown estado %q", entities.ErrInvalidArgument, m.Status)
	}
	if m.Email != "" && !strings.Contains(m.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", entities.ErrInvalidArgument)
	}

	return u.repo.CreateMember(ctx, m)
}

// Member returns a member by id.
func (u *Usecase) Member(ctx context.Context, id string) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !validID(id) {
		return nil, entities.ErrMemberNotFound
	}
	return u.repo.GetMember(ctx, id)
}

// Members lists members filtered by status and degree.
func (u *Usecase) Members(ctx context.Context, filter entities.MemberFilter) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Status != "" && !validMemberStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown estado %q", entities.ErrInvalidArgument, filter.Status)
	}
	page, err := normalizePage(filter.Page)
	if err != nil {
		return nil, err
	}
	filter.Page = page
	return u.repo.ListMembers(ctx, filter)
}

func validMemberStatus(s entities.MemberStatus) bool {
	switch s {
	case entities.MemberActive, entities.MemberInactive, entities.MemberSuspended:
		return true
	}
	return false
}
