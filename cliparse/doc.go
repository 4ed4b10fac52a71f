// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: SQLite file path (default: ./database.db) or PostgreSQL connection string
  - AdminKey: Shared secret required by POST /add-user (required)
  - CheckRatePerMin: Per-IP limit on POST /check-bonus (default: 30, 0 disables)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: auto, json, text (default: auto)

# CLI Flags

	-p            Server port
	-t            Database type
	-d            Database URL
	--admin-key   Admin key
	--rate        Check requests per minute per IP
	--trust-proxy Key clients by X-Forwarded-For/X-Real-IP
	--log-level   Log level
	--log-format  Log format

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_TYPE      → -t
	DATABASE_URL       → -d
	ADMIN_KEY          → --admin-key
	CHECK_RATE_PER_MIN → --rate
	TRUST_PROXY        → --trust-proxy
	LOG_LEVEL          → --log-level
	LOG_FORMAT         → --log-format

CLI flags take precedence over environment variables. main loads a .env
file into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if:

  - ADMIN_KEY is missing
  - PORT is not an integer in 1..65535
  - the database type is not sqlite or postgres
  - postgres is selected without DATABASE_URL
  - the log format is unknown
*/
package cliparse
