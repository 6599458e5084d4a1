package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	databaseDSNEnv             = "POSTGRES_DSN"
	databaseMaxOpenConnsEnv    = "DB_MAX_OPEN_CONNS"
	databaseMaxIdleConnsEnv    = "DB_MAX_IDLE_CONNS"
	databaseConnMaxLifetimeEnv = "DB_CONN_MAX_LIFETIME"

	defaultDatabaseMaxOpenConns    = 10
	defaultDatabaseMaxIdleConns    = 5
	defaultDatabaseConnMaxLifetime = 5 * time.Minute
)

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func LoadDatabaseConfig() (*DatabaseConfig, error) {
	maxOpenConns := defaultDatabaseMaxOpenConns
	if v := os.Getenv(databaseMaxOpenConnsEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", databaseMaxOpenConnsEnv, err)
		}
		maxOpenConns = parsed
	}

	maxIdleConns := defaultDatabaseMaxIdleConns
	if v := os.Getenv(databaseMaxIdleConnsEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", databaseMaxIdleConnsEnv, err)
		}
		maxIdleConns = parsed
	}

	connMaxLifetime, err := parseDurationEnv(databaseConnMaxLifetimeEnv, defaultDatabaseConnMaxLifetime)
	if err != nil {
		return nil, err
	}

	return &DatabaseConfig{
		DSN:             os.Getenv(databaseDSNEnv),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}, nil
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || c.DSN == "" {
		return ErrDatabaseDSNMissing
	}
	return nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDuration, key, raw)
	}
	return d, nil
}
