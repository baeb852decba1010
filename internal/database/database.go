// Package database provides PostgreSQL connection management for the
// calculation history store.
package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds database connection configuration.
type Config struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MinIdleConns    int
	ConnMaxLifetime time.Duration

	// ConnectMaxElapsed bounds the total time spent retrying the initial
	// connection.
	ConnectMaxElapsed time.Duration
}

// ConfigFromEnv creates a Config from environment variables.
func ConfigFromEnv() Config {
	port, _ := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	minIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MIN_IDLE_CONNS", "2"))
	lifetime, _ := time.ParseDuration(getEnvOrDefault("DB_CONN_MAX_LIFETIME", "5m"))
	connectElapsed, _ := time.ParseDuration(getEnvOrDefault("DB_CONNECT_MAX_ELAPSED", "30s"))

	return Config{
		Host:              getEnvOrDefault("DB_HOST", "localhost"),
		Port:              port,
		User:              getEnvOrDefault("DB_USER", "vayura"),
		Password:          getEnvOrDefault("DB_PASSWORD", "localdev"),
		Database:          getEnvOrDefault("DB_NAME", "oxygen_calculator"),
		SSLMode:           getEnvOrDefault("DB_SSL_MODE", "disable"),
		MaxOpenConns:      maxOpen,
		MinIdleConns:      minIdle,
		ConnMaxLifetime:   lifetime,
		ConnectMaxElapsed: connectElapsed,
	}
}

// ConnectionString returns the PostgreSQL connection string.
func (c Config) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// Connect creates a new database connection pool, retrying transient
// failures with exponential backoff until ConnectMaxElapsed.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns) //nolint:gosec // bounded by config
	poolConfig.MinConns = int32(cfg.MinIdleConns) //nolint:gosec // bounded by config
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = cfg.ConnectMaxElapsed

	var pool *pgxpool.Pool
	err = backoff.Retry(func() error {
		var connectErr error
		pool, connectErr = pgxpool.NewWithConfig(ctx, poolConfig)
		if connectErr != nil {
			return connectErr
		}
		if pingErr := pool.Ping(ctx); pingErr != nil {
			pool.Close()
			return pingErr
		}
		return nil
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return pool, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
