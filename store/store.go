// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type User struct {
	ID    int64
	Phone string
	Name  string
}

type Code struct {
	Day    int
	Secret string
}

// Store is the persistence boundary used by the HTTP handlers.
type Store interface {
	// FindUser returns ErrNotFound when no user has the phone.
	FindUser(ctx context.Context, phone string) (User, error)

	// FindCode returns ErrNotFound when no code exists for the day.
	FindCode(ctx context.Context, day int) (Code, error)

	// Redeem atomically marks (phone, day) as used. It reports false when the
	// pair was already used.
	Redeem(ctx context.Context, phone string, day int) (bool, error)

	// AddUser inserts the user unless the phone is already registered, in
	// which case the stored row is kept and created is false.
	AddUser(ctx context.Context, phone, name string) (created bool, err error)
}
