package config

import (
	"os"
	"strconv"
)

const (
	redisAddrEnv      = "REDIS_ADDR"
	redisPasswordEnv  = "REDIS_PASSWORD"
	redisDBEnv        = "REDIS_DB"
	redisTLSEnv       = "REDIS_TLS"
	redisKeyPrefixEnv = "REDIS_KEY_PREFIX"

	defaultRedisAddr      = "localhost:6379"
	defaultRedisDB        = 0
	defaultRedisKeyPrefix = "deadline-reminder"
)

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	TLS       bool
	KeyPrefix string
}

func LoadRedisConfig() (*RedisConfig, error) {
	db := defaultRedisDB
	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidRedisDB
		}
		db = parsed
	}

	return &RedisConfig{
		Addr:      getEnvOrDefault(redisAddrEnv, defaultRedisAddr),
		Password:  os.Getenv(redisPasswordEnv),
		DB:        db,
		TLS:       os.Getenv(redisTLSEnv) == "true",
		KeyPrefix: getEnvOrDefault(redisKeyPrefixEnv, defaultRedisKeyPrefix),
	}, nil
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}
