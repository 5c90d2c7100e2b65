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
	insertUserQuery = `
INSERT INTO users(id, username, password_hash, role, name)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, username, password_hash, role, name`
	selectUserByUsernameQuery = `SELECT id, username, password_hash, role, name FROM users WHERE username=$1`
	selectUserByIDQuery       = `SELECT id, username, password_hash, role, name FROM users WHERE id=$1`
)

// CreateUser inserts a dashboard account with an already hashed password.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	u, err := scanUser(p.db.QueryRow(ctx, insertUserQuery, user.ID, user.Username, user.PasswordHash, user.Role, user.Name))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrUserExists
		}
		p.log.Errorw("failed to create user", "error", err, "username", user.Username)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// GetUserByUsername fetches an account by login name.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserByUsernameQuery, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// GetUserByID fetches an account by id.
func (p *Postgres) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Name); err != nil {
		return nil, err
	}
	return &u, nil
}
