package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Defaults applied when neither a flag nor an environment variable is set.
const (
	DefaultPort            = 5000
	DefaultSQLitePath      = "./database.db"
	DefaultCheckRatePerMin = 30
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	AdminKey        string
	CheckRatePerMin int
	TrustProxy      bool
	LogLevel        string
	LogFormat       string
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("bonus-redeem", flag.ContinueOnError)

	// Network and storage (CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin key required by /add-user (prefer env)")

	fs.IntVar(&cfg.CheckRatePerMin, "rate", -1, "Max /check-bonus requests per minute per client IP (0 disables)")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Take the client IP from X-Forwarded-For/X-Real-IP (only behind a reverse proxy)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (auto, json, text)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLitePath
	}

	// Secrets - MUST be provided
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	if cfg.CheckRatePerMin < 0 {
		if rateStr := os.Getenv("CHECK_RATE_PER_MIN"); rateStr != "" {
			rate, err := strconv.Atoi(rateStr)
			if err != nil || rate < 0 {
				return Config{}, errors.New("invalid CHECK_RATE_PER_MIN env variable")
			}
			cfg.CheckRatePerMin = rate
		} else {
			cfg.CheckRatePerMin = DefaultCheckRatePerMin
		}
	}

	if !cfg.TrustProxy {
		if v := os.Getenv("TRUST_PROXY"); v != "" {
			trust, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid TRUST_PROXY env variable")
			}
			cfg.TrustProxy = trust
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = getEnv("LOG_FORMAT", "auto")
	}
	switch cfg.LogFormat {
	case "auto", "json", "text":
	default:
		return Config{}, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
