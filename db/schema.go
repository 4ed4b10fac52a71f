// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// ErrDuplicateRedemptions is returned when an existing clients table holds
// more than one row for the same (phone, day).
var ErrDuplicateRedemptions = errors.New("clients table has duplicate (phone, day) rows")

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// A clients table from an older deployment gains the redeemed_at column
// before the (phone, day) unique index is built.
func CreateSchema(ctx context.Context, conn *sql.DB, d Dialect) error {
	schema := sqliteSchema
	if d == Postgres {
		schema = postgresSchema
	}

	_, err := conn.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := migrateClients(ctx, conn, d); err != nil {
		return err
	}

	if err := checkDuplicateRedemptions(ctx, conn); err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, clientsIndex)
	if err != nil {
		return fmt.Errorf("failed to create clients index: %w", err)
	}

	return nil
}

func migrateClients(ctx context.Context, conn *sql.DB, d Dialect) error {
	query := `SELECT COUNT(*) FROM pragma_table_info('clients') WHERE name = 'redeemed_at'`
	if d == Postgres {
		query = `SELECT COUNT(*) FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = 'clients' AND column_name = 'redeemed_at'`
	}

	var n int
	if err := conn.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return fmt.Errorf("failed to inspect clients table: %w", err)
	}
	if n > 0 {
		return nil
	}

	if _, err := conn.ExecContext(ctx, `ALTER TABLE clients ADD COLUMN redeemed_at TIMESTAMP`); err != nil {
		return fmt.Errorf("failed to add clients.redeemed_at: %w", err)
	}
	slog.Info("migrated clients table", "added_column", "redeemed_at")
	return nil
}

func checkDuplicateRedemptions(ctx context.Context, conn *sql.DB) error {
	var (
		phone string
		day   int
		rows  int
	)
	err := conn.QueryRowContext(ctx, `
		SELECT phone, day, COUNT(*) FROM clients
		WHERE phone IS NOT NULL AND day IS NOT NULL
		GROUP BY phone, day
		HAVING COUNT(*) > 1
		LIMIT 1
	`).Scan(&phone, &day, &rows)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check clients for duplicates: %w", err)
	}
	return fmt.Errorf("%w: day %d has %d rows for one phone; merge them before starting", ErrDuplicateRedemptions, day, rows)
}

const clientsIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_clients_phone_day ON clients(phone, day)`

const sqliteSchema = `
-- Authorized users
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    phone TEXT NOT NULL UNIQUE,
    name TEXT
);

-- Redemptions, one row per (phone, day)
CREATE TABLE IF NOT EXISTS clients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    phone TEXT NOT NULL,
    day INTEGER NOT NULL,
    used INTEGER NOT NULL DEFAULT 0,
    redeemed_at TIMESTAMP
);

-- Day codes
CREATE TABLE IF NOT EXISTS codes (
    day INTEGER PRIMARY KEY,
    secret TEXT NOT NULL
);
`

const postgresSchema = `
-- Authorized users
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    phone TEXT NOT NULL UNIQUE,
    name TEXT
);

-- Redemptions, one row per (phone, day)
CREATE TABLE IF NOT EXISTS clients (
    id SERIAL PRIMARY KEY,
    phone TEXT NOT NULL,
    day INTEGER NOT NULL,
    used INTEGER NOT NULL DEFAULT 0,
    redeemed_at TIMESTAMP
);

-- Day codes
CREATE TABLE IF NOT EXISTS codes (
    day INTEGER PRIMARY KEY,
    secret TEXT NOT NULL
);
`
