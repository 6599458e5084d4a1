package config

import "errors"

var (
	ErrRedisAddrMissing       = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB         = errors.New("REDIS_DB must be a valid integer")
	ErrDatabaseDSNMissing     = errors.New("POSTGRES_DSN environment variable is required")
	ErrInvalidTimezone        = errors.New("REMINDER_TIMEZONE must be a valid IANA time zone")
	ErrInvalidPollInterval    = errors.New("POLL_INTERVAL must be a positive duration")
	ErrInvalidDuration        = errors.New("invalid duration")
	ErrInvalidJobTimeout      = errors.New("JOB_TIMEOUT must be a positive duration")
	ErrRunLockTTLTooShort     = errors.New("RUN_LOCK_TTL must not be shorter than JOB_TIMEOUT")
	ErrSchedulerAudienceEmpty = errors.New("SCHEDULER_AUDIENCE is required unless SCHEDULER_AUTH_DISABLED=true")
)
