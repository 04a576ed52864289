package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StatusPolicy selects which status changes are accepted.
	StatusPolicy order.TransitionPolicy
	// SequenceRetention is how long per-day order counters are kept.
	SequenceRetention time.Duration
	// PruneSchedule is the cron expression of the counter pruning job.
	PruneSchedule  string
	RequestTimeout time.Duration
	// CORSOrigins are the browser origins allowed to call the API.
	CORSOrigins []string
}

// ConfigFromEnv reads the configuration from the process environment and applies
// defaults for the optional settings.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		DBHost:         envOr("DB_HOST", "localhost"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOr("DB_SSLMODE", "disable"),
		PruneSchedule:  envOr("SEQUENCE_PRUNE_SCHEDULE", "15 3 * * *"),
		RequestTimeout: 10 * time.Second,
		CORSOrigins:    splitList(envOr("CORS_ORIGINS", "http://localhost:3000")),
	}

	var err error
	if cfg.StatusPolicy, err = order.ParseTransitionPolicy(os.Getenv("ORDER_STATUS_POLICY")); err != nil {
		return Config{}, err
	}

	days, err := strconv.Atoi(envOr("SEQUENCE_RETENTION_DAYS", "30"))
	if err != nil || days < 1 {
		return Config{}, errs.NewValueIsInvalidError("SEQUENCE_RETENTION_DAYS")
	}
	cfg.SequenceRetention = time.Duration(days) * 24 * time.Hour

	if raw := os.Getenv("HTTP_REQUEST_TIMEOUT"); raw != "" {
		if cfg.RequestTimeout, err = time.ParseDuration(raw); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("HTTP_REQUEST_TIMEOUT", err)
		}
	}

	if cfg.DBUser == "" {
		return Config{}, errs.NewValueIsRequiredError("DB_USER")
	}
	if cfg.DBName == "" {
		return Config{}, errs.NewValueIsRequiredError("DB_NAME")
	}
	return cfg, nil
}

// DSN is the libpq connection string of the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// splitList parses a comma separated list, dropping blanks. "-" yields an empty list.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "-" {
		return nil
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
