package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // distroless images ship without zoneinfo
)

const (
	reminderTimezoneEnv    = "REMINDER_TIMEZONE"
	pollIntervalEnv        = "POLL_INTERVAL"
	reminderSuppressionEnv = "REMINDER_SUPPRESSION"
	deliveryStrategyEnv    = "DELIVERY_STRATEGY"
	runLockTTLEnv          = "RUN_LOCK_TTL"
	jobTimeoutEnv          = "JOB_TIMEOUT"

	defaultReminderTimezone = "UTC"
	defaultPollInterval     = time.Minute
	defaultRunLockTTL       = 5 * time.Minute
	defaultJobTimeout       = 2 * time.Minute
)

type SuppressionPolicy string

const (
	// SuppressionCooldown only applies the per-type cooldown.
	SuppressionCooldown SuppressionPolicy = "cooldown"
	// SuppressionOccurrence also suppresses a type once it was sent inside
	// the current window.
	SuppressionOccurrence SuppressionPolicy = "occurrence"

	defaultSuppressionPolicy = SuppressionOccurrence
)

type DeliveryStrategy string

const (
	DeliveryStrategyClaim DeliveryStrategy = "claim"
	DeliveryStrategyBatch DeliveryStrategy = "batch"

	defaultDeliveryStrategy = DeliveryStrategyClaim
)

type ReminderConfig struct {
	Location     *time.Location
	PollInterval time.Duration
	Suppression  SuppressionPolicy
	Delivery     DeliveryStrategy
	RunLockTTL   time.Duration
	JobTimeout   time.Duration
}

func LoadReminderConfig() (*ReminderConfig, error) {
	tz := getEnvOrDefault(reminderTimezoneEnv, defaultReminderTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	pollInterval, err := parseDurationEnv(pollIntervalEnv, defaultPollInterval)
	if err != nil {
		return nil, err
	}
	if pollInterval <= 0 {
		return nil, ErrInvalidPollInterval
	}

	suppression := SuppressionPolicy(os.Getenv(reminderSuppressionEnv))
	if suppression != SuppressionCooldown && suppression != SuppressionOccurrence {
		suppression = defaultSuppressionPolicy
	}

	delivery := DeliveryStrategy(os.Getenv(deliveryStrategyEnv))
	if delivery != DeliveryStrategyClaim && delivery != DeliveryStrategyBatch {
		delivery = defaultDeliveryStrategy
	}

	lockTTL, err := parseDurationEnv(runLockTTLEnv, defaultRunLockTTL)
	if err != nil {
		return nil, err
	}
	if lockTTL <= 0 {
		lockTTL = defaultRunLockTTL
	}

	jobTimeout, err := parseDurationEnv(jobTimeoutEnv, defaultJobTimeout)
	if err != nil {
		return nil, err
	}

	return &ReminderConfig{
		Location:     loc,
		PollInterval: pollInterval,
		Suppression:  suppression,
		Delivery:     delivery,
		RunLockTTL:   lockTTL,
		JobTimeout:   jobTimeout,
	}, nil
}

// Validate checks that the run lock outlives the longest run it guards.
func (c *ReminderConfig) Validate() error {
	if c.JobTimeout <= 0 {
		return ErrInvalidJobTimeout
	}
	if c.RunLockTTL < c.JobTimeout {
		return fmt.Errorf("%w: RUN_LOCK_TTL=%s JOB_TIMEOUT=%s", ErrRunLockTTLTooShort, c.RunLockTTL, c.JobTimeout)
	}
	return nil
}
