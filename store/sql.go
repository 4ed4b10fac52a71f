// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/bonus-redeem/db"
)

// SQLStore implements Store on database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewSQLStore(conn *sql.DB, d db.Dialect) *SQLStore {
	return &SQLStore{db: conn, dialect: d}
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) FindUser(ctx context.Context, phone string) (User, error) {
	var u User
	var name sql.NullString
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		SELECT id, phone, name FROM users WHERE phone = ?
	`), phone).Scan(&u.ID, &u.Phone, &name)

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("find user: %w", err)
	}

	u.Name = name.String
	return u, nil
}

func (s *SQLStore) FindCode(ctx context.Context, day int) (Code, error) {
	var c Code
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		SELECT day, secret FROM codes WHERE day = ?
	`), day).Scan(&c.Day, &c.Secret)

	if errors.Is(err, sql.ErrNoRows) {
		return Code{}, ErrNotFound
	}
	if err != nil {
		return Code{}, fmt.Errorf("find code: %w", err)
	}

	return c, nil
}

// Redeem relies on the UNIQUE (phone, day) index: the conflict branch only
// updates rows that are still unused, so an already-used pair affects no rows.
func (s *SQLStore) Redeem(ctx context.Context, phone string, day int) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.dialect.Rebind(`
		INSERT INTO clients (phone, day, used, redeemed_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (phone, day) DO UPDATE
		SET used = 1, redeemed_at = CURRENT_TIMESTAMP
		WHERE clients.used = 0
	`), phone, day)
	if err != nil {
		return false, fmt.Errorf("redeem: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("redeem rows affected: %w", err)
	}

	return n > 0, nil
}

func (s *SQLStore) AddUser(ctx context.Context, phone, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.dialect.Rebind(`
		INSERT INTO users (phone, name) VALUES (?, ?)
		ON CONFLICT (phone) DO NOTHING
	`), phone, name)
	if err != nil {
		return false, fmt.Errorf("add user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add user rows affected: %w", err)
	}

	return n > 0, nil
}
