// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the storage abstraction injected into the HTTP handlers.

# Operations

	FindUser(ctx, phone)      → User or ErrNotFound
	FindCode(ctx, day)        → Code or ErrNotFound
	Redeem(ctx, phone, day)   → true if newly redeemed, false if already used
	AddUser(ctx, phone, name) → true if inserted, false if the phone exists

# Implementations

  - SQLStore: database/sql over SQLite or PostgreSQL (see package db)
  - MemoryStore: mutex-guarded maps, for tests

# Atomic Redemption

SQLStore.Redeem is a single conditional upsert against the UNIQUE (phone, day)
index, so concurrent requests for the same pair produce exactly one success.
*/
package store
