// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the bonus-redeem API server.

bonus-redeem registers authorized phone numbers, checks day-specific secret
codes, and records at most one redemption per (phone, day).

# Starting the Server

The only required setting is the admin key:

	ADMIN_KEY=change-me go run .

Or with flags:

	go run . -p 5000 -admin-key change-me -d ./database.db

Settings may also live in a .env file in the working directory.

# Configuration

Required settings:

  - ADMIN_KEY (--admin-key): Shared secret for POST /add-user

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: ./database.db)
  - CHECK_RATE_PER_MIN (--rate): per-IP limit on /check-bonus (default: 30)
  - TRUST_PROXY (--trust-proxy): use forwarded client IPs behind a reverse proxy (default: false)
  - LOG_LEVEL, LOG_FORMAT

# Startup

Before listening, the server creates missing tables and seeds the six fixed
day codes (5, 10, 15, 20, 25, 30) into an empty codes table.

# Architecture

  - handlers: HTTP request handlers (check-bonus, add-user)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - store: Storage interface with SQL and in-memory implementations
  - db: Connection, schema and seed data
  - models: Request/response types
  - auth: Admin key and code comparison
  - metrics: Prometheus collectors
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
