// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/bonus-redeem/cliparse"
	"github.com/danielhkuo/bonus-redeem/handlers"
	"github.com/danielhkuo/bonus-redeem/metrics"
	"github.com/danielhkuo/bonus-redeem/middleware"
	"github.com/danielhkuo/bonus-redeem/store"
)

// pinger is implemented by stores backed by a live connection
type pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(s store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	bonusHandler := handlers.NewBonusHandler(s, cfg)
	adminHandler := handlers.NewAdminHandler(s, cfg)
	limiter := middleware.NewRateLimiter(cfg.CheckRatePerMin, cfg.TrustProxy)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if p, ok := s.(pinger); ok {
			if err := p.Ping(r.Context()); err != nil {
				slog.Error("health check failed", "error", err)
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Redemption (public)
	mux.HandleFunc("POST /check-bonus", middleware.WithLogging(limiter.Limit(bonusHandler.CheckBonus)))

	// User registration (admin key)
	mux.HandleFunc("POST /add-user", middleware.WithLogging(adminHandler.AddUser))

	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bonus-redeem API v1"))
	})

	return mux
}
