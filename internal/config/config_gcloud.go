//go:build gcloud

package config

func (c *TriggerConfig) Validate() error {
	if c.SchedulerAuthDisabled {
		return nil
	}
	if c.SchedulerAudience == "" {
		return ErrSchedulerAudienceEmpty
	}
	return nil
}
