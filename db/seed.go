// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SeedCode is a fixed day → secret pair inserted at bootstrap.
type SeedCode struct {
	Day    int
	Secret string
}

// DefaultCodes are seeded into an empty codes table.
var DefaultCodes = []SeedCode{
	{Day: 5, Secret: "UH6X"},
	{Day: 10, Secret: "XBBM"},
	{Day: 15, Secret: "L3OU"},
	{Day: 20, Secret: "00VE"},
	{Day: 25, Secret: "02UD"},
	{Day: 30, Secret: "LAQQ"},
}

// SeedCodes inserts codes when the codes table is empty and returns how many
// rows were written. A non-empty table is left untouched.
func SeedCodes(ctx context.Context, conn *sql.DB, d Dialect, codes []SeedCode) (int, error) {
	var count int
	if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM codes").Scan(&count); err != nil {
		return 0, fmt.Errorf("count codes: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, d.Rebind("INSERT INTO codes (day, secret) VALUES (?, ?)"))
	if err != nil {
		return 0, fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, c := range codes {
		if _, err := stmt.ExecContext(ctx, c.Day, c.Secret); err != nil {
			return 0, fmt.Errorf("seed day %d: %w", c.Day, err)
		}
		slog.Info("seeded bonus code", "day", c.Day, "secret", c.Secret)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}

	return len(codes), nil
}

// Bootstrap creates the schema and seeds DefaultCodes.
func Bootstrap(ctx context.Context, conn *sql.DB, d Dialect) (int, error) {
	if err := CreateSchema(ctx, conn, d); err != nil {
		return 0, err
	}
	return SeedCodes(ctx, conn, d, DefaultCodes)
}
