// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect names a supported database. Its value doubles as the
// database/sql driver name.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// ParseDialect maps a configured database type onto a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case SQLite, Postgres:
		return Dialect(s), nil
	}
	return "", fmt.Errorf("unsupported database type %q", s)
}

// Rebind rewrites ? placeholders into the dialect's bind syntax.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(string(d), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d, err)
	}

	if d == SQLite {
		// SQLite allows a single writer
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}

	if d == SQLite {
		if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("configure sqlite: %w", err)
		}
		if fi, err := os.Stat(dsn); err == nil {
			slog.Info("sqlite database opened", "path", dsn, "size", humanize.Bytes(uint64(fi.Size())))
		}
	}

	return conn, nil
}
