package config

import "time"

const (
	telegramAPIURLEnv  = "TELEGRAM_API_URL"
	telegramTimeoutEnv = "TELEGRAM_TIMEOUT"

	defaultTelegramAPIURL  = "https://api.telegram.org"
	defaultTelegramTimeout = 10 * time.Second
)

// TelegramConfig holds transport settings only. Bot token and chat id are
// read from the settings table on every run.
type TelegramConfig struct {
	APIURL  string
	Timeout time.Duration
}

func LoadTelegramConfig() (*TelegramConfig, error) {
	timeout, err := parseDurationEnv(telegramTimeoutEnv, defaultTelegramTimeout)
	if err != nil {
		return nil, err
	}

	return &TelegramConfig{
		APIURL:  getEnvOrDefault(telegramAPIURLEnv, defaultTelegramAPIURL),
		Timeout: timeout,
	}, nil
}
