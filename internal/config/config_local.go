//go:build !gcloud

package config

func (c *TriggerConfig) Validate() error {
	return nil
}
