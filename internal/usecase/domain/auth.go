// Package domain contains application Usecases orchestrating domain logic by account.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logia-admin/internal/entities"
)

// Login checks the credentials and issues a session token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			// equalize timing with the wrong-password path
			u.hasher.Compare(u.dummyHash(), password)
			u.log.Warnw("login failed", "username", username, "reason", "unknown user")
			return nil, entities.ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.hasher.Compare(user.PasswordHash, password) {
		u.log.Warnw("login failed", "username", username, "reason", "password mismatch")
		return nil, entities.ErrInvalidCredentials
	}

	token, err := u.tokens.Generate(*user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	u.log.Infow("user logged in", "user_id", user.ID, "role", user.Role)
	return &entities.Session{User: *user, Token: token}, nil
}

// CurrentUser returns the account behind an authenticated request.
func (u *Usecase) CurrentUser(ctx context.Context, userID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !validID(userID) {
		return nil, entities.ErrUserNotFound
	}
	return u.repo.GetUserByID(ctx, userID)
}

// EnsureAdmin creates the bootstrap admin account unless it already exists.
// It reports whether an account was created.
func (u *Usecase) EnsureAdmin(ctx context.Context, username, password, name string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" || password == "" {
		return false, fmt.Errorf("%w: admin username and password are required", entities.ErrInvalidArgument)
	}

	_, err := u.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return false, err
	}

	if name == "" {
		name = username
	}
	_, err = u.createUser(ctx, username, password, entities.RoleAdmin, name)
	if errors.Is(err, entities.ErrUserExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	u.log.Infow("bootstrap admin created", "username", username)
	return true, nil
}

// CreateUser registers a dashboard account with the given role.
func (u *Usecase) CreateUser(ctx context.Context, username, password string, role entities.Role, name string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: username, password and name are required", entities.ErrInvalidArgument)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, role)
	}

	user, err := u.createUser(ctx, username, password, role, name)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (u *Usecase) createUser(ctx context.Context, username, password string, role entities.Role, name string) (*entities.User, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidArgument, err)
	}
	return u.repo.CreateUser(ctx, entities.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Name:         name,
	})
}

// dummyHash is compared against when the username is unknown.
func (u *Usecase) dummyHash() string {
	u.dummyOnce.Do(func() {
		h, err := u.hasher.Hash("logia-unknown-user-placeholder")
		if err != nil {
			u.log.Errorw("failed to build dummy hash", "error", err)
		}
		u.dummy = h
	})
	return u.dummy
}
