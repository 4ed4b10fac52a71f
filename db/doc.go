// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and bootstraps its schema and seed data.

# Drivers

Two dialects are supported, selected by DATABASE_TYPE:

  - sqlite: modernc.org/sqlite (pure Go), a single file such as ./database.db
  - postgres: github.com/lib/pq

	conn, err := db.Open(ctx, db.SQLite, "./database.db")

SQLite connections are capped at one so writers never contend.

# Bootstrap

Bootstrap creates all tables and seeds the fixed day codes:

	if _, err := db.Bootstrap(ctx, conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - tables use IF NOT EXISTS and codes are only
seeded into an empty table.

# Tables

  - users: authorized phones (phone is UNIQUE)
  - clients: redemptions, UNIQUE (phone, day)
  - codes: day → secret, seeded from DefaultCodes

# Placeholders

Queries are written with ? placeholders. Dialect.Rebind converts them to
$1, $2, ... for postgres.
*/
package db
