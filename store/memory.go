// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/bonus-redeem/db"
)

type redemptionKey struct {
	phone string
	day   int
}

// MemoryStore is an in-process Store. It is used in tests and behaves like
// SQLStore.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]User
	codes  map[int]Code
	used   map[redemptionKey]bool
}

// NewMemoryStore returns a store seeded with codes, or db.DefaultCodes when
// none are given.
func NewMemoryStore(codes ...db.SeedCode) *MemoryStore {
	if len(codes) == 0 {
		codes = db.DefaultCodes
	}

	m := &MemoryStore{
		users: make(map[string]User),
		codes: make(map[int]Code, len(codes)),
		used:  make(map[redemptionKey]bool),
	}
	for _, c := range codes {
		m.codes[c.Day] = Code{Day: c.Day, Secret: c.Secret}
	}
	return m
}

func (m *MemoryStore) FindUser(_ context.Context, phone string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[phone]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryStore) FindCode(_ context.Context, day int) (Code, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.codes[day]
	if !ok {
		return Code{}, ErrNotFound
	}
	return c, nil
}

func (m *MemoryStore) Redeem(_ context.Context, phone string, day int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := redemptionKey{phone: phone, day: day}
	if m.used[key] {
		return false, nil
	}
	m.used[key] = true
	return true, nil
}

func (m *MemoryStore) AddUser(_ context.Context, phone, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[phone]; ok {
		return false, nil
	}
	m.nextID++
	m.users[phone] = User{ID: m.nextID, Phone: phone, Name: name}
	return true, nil
}
