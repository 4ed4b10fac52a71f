package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/bonus-redeem/cliparse"
	"github.com/danielhkuo/bonus-redeem/db"
	"github.com/danielhkuo/bonus-redeem/logging"
	"github.com/danielhkuo/bonus-redeem/metrics"
	"github.com/danielhkuo/bonus-redeem/middleware"
	"github.com/danielhkuo/bonus-redeem/router"
	"github.com/danielhkuo/bonus-redeem/store"
)

func main() {
	// Load .env into the environment; a missing file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if err := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat); err != nil {
		slog.Error("logger setup failed", "error", err)
		os.Exit(1)
	}

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		slog.Error("invalid database type", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect and verify
	dbConn, err := db.Open(ctx, dialect, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create tables and seed day codes before accepting traffic
	seeded, err := db.Bootstrap(ctx, dbConn, dialect)
	if err != nil {
		slog.Error("database bootstrap failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "type", dialect, "codes_seeded", seeded)

	metrics.MustRegister()

	mux := router.NewRouter(store.NewSQLStore(dbConn, dialect), cfg)

	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
			server.Close()
		}
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
