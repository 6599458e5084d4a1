package config

import "os"

const (
	scheduleCronEnv          = "SCHEDULE_CRON"
	schedulerAudienceEnv     = "SCHEDULER_AUDIENCE"
	schedulerAuthDisabledEnv = "SCHEDULER_AUTH_DISABLED"
)

type TriggerConfig struct {
	// Cron enables the in-process schedule when non-empty.
	Cron string

	SchedulerAudience     string
	SchedulerAuthDisabled bool
}

func LoadTriggerConfig() *TriggerConfig {
	return &TriggerConfig{
		Cron:                  os.Getenv(scheduleCronEnv),
		SchedulerAudience:     os.Getenv(schedulerAudienceEnv),
		SchedulerAuthDisabled: os.Getenv(schedulerAuthDisabledEnv) == "true",
	}
}
