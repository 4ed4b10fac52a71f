// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the bonus redemption API.

# Usage

	mux := router.NewRouter(st, cfg)
	server := http.Server{Handler: middleware.CORS(mux), Addr: ":5000"}

# Routes

Uses Go 1.22+ method patterns:

	GET  /              → version string
	GET  /health        → "OK", or 503 when the database is unreachable
	GET  /metrics       → Prometheus metrics
	POST /check-bonus   → BonusHandler.CheckBonus (rate limited per IP)
	POST /add-user      → AdminHandler.AddUser

Other methods on these paths get 405 from the ServeMux.

# Middleware

The two API routes are wrapped with middleware.WithLogging. /check-bonus is
also wrapped with a per-client-IP rate limiter sized by
cfg.CheckRatePerMin (0 disables it).
*/
package router
